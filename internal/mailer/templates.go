package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/google/uuid"
)

var digestText = texttemplate.Must(texttemplate.New("digest").Parse(
	`We found content similar to assets you watch.

{{range .Pairs}}Asset {{.WatchedAssetID}}:
  your frame:    {{.OriginURL}}
  similar frame: {{.SimilarURL}}

{{end}}You receive this mail because you subscribed to similarity alerts.
`))

var digestHTML = htmltemplate.Must(htmltemplate.New("digest").Parse(
	`<html><body>
<p>We found content similar to assets you watch.</p>
{{range .Pairs}}<p><b>Asset {{.WatchedAssetID}}</b><br>
your frame: <a href="{{.OriginURL}}">{{.OriginURL}}</a><br>
similar frame: <a href="{{.SimilarURL}}">{{.SimilarURL}}</a></p>
{{end}}
<p><small>You receive this mail because you subscribed to similarity alerts.</small></p>
</body></html>`))

var confirmationText = texttemplate.Must(texttemplate.New("confirm").Parse(
	`Confirm your similarity alert subscription for asset {{.AssetID}}:

{{.ConfirmURL}}

If you did not request this subscription, ignore this mail.
`))

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirm").Parse(
	`<html><body>
<p>Confirm your similarity alert subscription for asset <b>{{.AssetID}}</b>:</p>
<p><a href="{{.ConfirmURL}}">Confirm subscription</a></p>
<p><small>If you did not request this subscription, ignore this mail.</small></p>
</body></html>`))

func renderDigest(digest *Digest) (string, string, error) {
	var text, html bytes.Buffer
	if err := digestText.Execute(&text, digest); err != nil {
		return "", "", fmt.Errorf("text template: %w", err)
	}
	if err := digestHTML.Execute(&html, digest); err != nil {
		return "", "", fmt.Errorf("html template: %w", err)
	}
	return text.String(), html.String(), nil
}

func renderConfirmation(assetID uuid.UUID, confirmURL string) (string, string, error) {
	data := struct {
		AssetID    uuid.UUID
		ConfirmURL string
	}{AssetID: assetID, ConfirmURL: confirmURL}

	var text, html bytes.Buffer
	if err := confirmationText.Execute(&text, data); err != nil {
		return "", "", fmt.Errorf("text template: %w", err)
	}
	if err := confirmationHTML.Execute(&html, data); err != nil {
		return "", "", fmt.Errorf("html template: %w", err)
	}
	return text.String(), html.String(), nil
}
