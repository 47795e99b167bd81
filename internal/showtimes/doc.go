// Package showtimes collects and shapes the showtime feed for matched films.
//
// The feed is paginated by date: a day either carries results or a
// jump-ahead cursor naming the next date that does. The aggregator walks the
// subscriber's date window, filters theaters by postal-code prefix, and the
// day-bucket builder regroups the flat records per calendar day under the
// evening/weekend display rule.
package showtimes
