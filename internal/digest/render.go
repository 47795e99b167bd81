package digest

import (
	"fmt"
	"html/template"
	"strings"

	"cinewatch/internal/showtimes"
)

const placeholderPoster = "https://via.placeholder.com/120x180?text=No+Poster"

// FilmSection is one film card in the digest.
type FilmSection struct {
	Title  string
	Poster string
	Days   []showtimes.Day
}

// MissingFilm names a watchlist entry that could not be matched to the
// showtime catalog.
type MissingFilm struct {
	Title string
	URL   string
}

// Digest is the full content of one run's email.
type Digest struct {
	Date    string
	Films   []FilmSection
	Missing []MissingFilm
}

// Empty reports whether there is nothing worth sending.
func (d Digest) Empty() bool {
	return len(d.Films) == 0 && len(d.Missing) == 0
}

// Subject builds the message subject line.
func (d Digest) Subject() string {
	return fmt.Sprintf("Films au cinema - %s", d.Date)
}

var bodyTemplate = template.Must(template.New("digest").Parse(`<html>
  <head>
    <meta name="viewport" content="width=device-width, initial-scale=1">
  </head>
  <body>
    <div class="container">
{{- range .Films}}
      <table role="presentation" width="100%" cellspacing="0" cellpadding="0" border="0"
          style="margin-bottom:30px; background:#ffffff; border:1px solid #ddd; border-radius:10px; overflow:hidden;">
        <tr>
          <td width="120" valign="top" style="padding:12px;">
            <img src="{{.Poster}}" alt="Affiche de {{.Title}}" width="120" height="180"
                style="display:block; width:120px; height:180px; border-radius:6px; border:0; outline:none;">
          </td>
          <td valign="top" style="padding:12px 16px; font-family:Arial,Helvetica,sans-serif;">
            <h2 style="margin:0 0 8px 0; font-size:20px; font-weight:bold; color:#EF0107;">{{.Title}}</h2>
{{- range .Days}}
            <div style="margin:10px 0;">
              <div style="background:#f9f2dc; color:#9C824A; font-size:15px; font-weight:bold; padding:6px 10px; border-radius:4px; display:inline-block; margin-bottom:6px;">{{.Label}}</div>
              <ul style="margin:0; padding-left:20px; font-size:14px; line-height:1.5; color:#333;">
{{- range .Rows}}
                <li style="margin:0 0 6px 0;">{{.ShowtimeHour}} :
                  <a href="{{.TheaterMaps}}" target="_blank" style="color:#1a73e8; text-decoration:none;">Cin&eacute;ma {{.TheaterName}}</a>
                </li>
{{- end}}
              </ul>
            </div>
{{- end}}
          </td>
        </tr>
      </table>
{{- end}}
{{- if .Missing}}
      <div style="background:#fff3cd; border:1px solid #ffeeba; color:#654d03; border-radius:8px; padding:16px; margin:28px 0; font-family:Arial,Helvetica,sans-serif;">
        <div style="font-weight:700; font-size:18px; margin-bottom:8px;">Info non trouv&eacute;e via Allocin&eacute;</div>
        <div style="font-size:14px; margin-bottom:8px;">Erreur pour faire le pont entre Letterboxd et Allocin&eacute; pour ces films :</div>
        <ul style="margin:0 0 0 18px; padding:0; font-size:14px; line-height:1.5;">
{{- range .Missing}}
          <li>
            <a href="{{.URL}}" target="_blank" style="color:#1a73e8; text-decoration:underline;">{{.Title}}</a>
          </li>
{{- end}}
        </ul>
      </div>
{{- end}}
    </div>
  </body>
</html>
`))

// Render produces the HTML body. Sections without a poster get the
// placeholder image so the card layout keeps its shape.
func Render(d Digest) (string, error) {
	for i := range d.Films {
		if d.Films[i].Poster == "" {
			d.Films[i].Poster = placeholderPoster
		}
		if d.Films[i].Title == "" {
			d.Films[i].Title = "Titre inconnu"
		}
	}
	var buf strings.Builder
	if err := bodyTemplate.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render digest: %w", err)
	}
	return buf.String(), nil
}
