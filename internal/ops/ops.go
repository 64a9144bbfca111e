// Package ops defines the positional edit requests produced by the note
// parser. The types mirror the Google Docs batchUpdate wire format exactly;
// they carry no behavior and do no offset validation.
package ops

import "fmt"

// Bullet presets accepted by createParagraphBullets.
const (
	BulletCheckbox = "BULLET_CHECKBOX"
	BulletDisc     = "BULLET_DISC_CIRCLE_SQUARE"
)

// Location addresses a single insertion point in the document body.
type Location struct {
	Index int64 `json:"index"`
}

// Range is a half-open [StartIndex, EndIndex) interval in the same address
// space as Location.
type Range struct {
	StartIndex int64 `json:"startIndex"`
	EndIndex   int64 `json:"endIndex"`
}

type InsertText struct {
	Location Location `json:"location"`
	Text     string   `json:"text"`
}

type ParagraphStyle struct {
	NamedStyleType string `json:"namedStyleType"`
}

type UpdateParagraphStyle struct {
	Range          Range          `json:"range"`
	ParagraphStyle ParagraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

type TextStyle struct {
	Bold bool `json:"bold"`
}

type UpdateTextStyle struct {
	Range     Range     `json:"range"`
	TextStyle TextStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

type CreateParagraphBullets struct {
	Range        Range  `json:"range"`
	BulletPreset string `json:"bulletPreset"`
}

// Request is the union of the four edit variants. Exactly one field is
// non-nil; the JSON key of the set field names the variant on the wire.
type Request struct {
	InsertText             *InsertText             `json:"insertText,omitempty"`
	UpdateParagraphStyle   *UpdateParagraphStyle   `json:"updateParagraphStyle,omitempty"`
	UpdateTextStyle        *UpdateTextStyle        `json:"updateTextStyle,omitempty"`
	CreateParagraphBullets *CreateParagraphBullets `json:"createParagraphBullets,omitempty"`
}

// NamedStyleHeading returns the named paragraph style for a heading level,
// e.g. "HEADING_1".
func NamedStyleHeading(level int) string {
	return fmt.Sprintf("HEADING_%d", level)
}

func NewInsertText(index int64, text string) Request {
	return Request{InsertText: &InsertText{
		Location: Location{Index: index},
		Text:     text,
	}}
}

func NewUpdateParagraphStyle(start, end int64, namedStyle string) Request {
	return Request{UpdateParagraphStyle: &UpdateParagraphStyle{
		Range:          Range{StartIndex: start, EndIndex: end},
		ParagraphStyle: ParagraphStyle{NamedStyleType: namedStyle},
		Fields:         "namedStyleType",
	}}
}

// NewBoldTextStyle marks [start, end) bold.
func NewBoldTextStyle(start, end int64) Request {
	return Request{UpdateTextStyle: &UpdateTextStyle{
		Range:     Range{StartIndex: start, EndIndex: end},
		TextStyle: TextStyle{Bold: true},
		Fields:    "bold",
	}}
}

func NewCreateParagraphBullets(start, end int64, preset string) Request {
	return Request{CreateParagraphBullets: &CreateParagraphBullets{
		Range:        Range{StartIndex: start, EndIndex: end},
		BulletPreset: preset,
	}}
}
