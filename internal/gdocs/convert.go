package gdocs

import (
	docs "google.golang.org/api/docs/v1"

	"github.com/valpere/notedoc/internal/ops"
)

// toDocsRequests maps the parser's request model onto the generated Docs API
// types. The mapping is mechanical; both sides share the same wire shape.
func toDocsRequests(requests []ops.Request) []*docs.Request {
	out := make([]*docs.Request, 0, len(requests))
	for _, r := range requests {
		out = append(out, toDocsRequest(r))
	}
	return out
}

func toDocsRequest(r ops.Request) *docs.Request {
	switch {
	case r.InsertText != nil:
		return &docs.Request{InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: r.InsertText.Location.Index},
			Text:     r.InsertText.Text,
		}}
	case r.UpdateParagraphStyle != nil:
		return &docs.Request{UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range: toDocsRange(r.UpdateParagraphStyle.Range),
			ParagraphStyle: &docs.ParagraphStyle{
				NamedStyleType: r.UpdateParagraphStyle.ParagraphStyle.NamedStyleType,
			},
			Fields: r.UpdateParagraphStyle.Fields,
		}}
	case r.UpdateTextStyle != nil:
		return &docs.Request{UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range: toDocsRange(r.UpdateTextStyle.Range),
			TextStyle: &docs.TextStyle{
				Bold: r.UpdateTextStyle.TextStyle.Bold,
			},
			Fields: r.UpdateTextStyle.Fields,
		}}
	case r.CreateParagraphBullets != nil:
		return &docs.Request{CreateParagraphBullets: &docs.CreateParagraphBulletsRequest{
			Range:        toDocsRange(r.CreateParagraphBullets.Range),
			BulletPreset: r.CreateParagraphBullets.BulletPreset,
		}}
	}
	return &docs.Request{}
}

func toDocsRange(r ops.Range) *docs.Range {
	return &docs.Range{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
}
