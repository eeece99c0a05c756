package form

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dmitrijs2005/mobiehub/internal/client/models"
)

const (
	MsgInvalidForm = "Please complete all fields correctly"
	MsgLeave       = "Are you sure you want to leave? Unsaved changes will be lost."
)

var (
	ErrBusy         = errors.New("submit already in progress")
	ErrInvalidForm  = errors.New("invalid form")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError is returned by Submit when the draft has invalid fields.
type ValidationError struct {
	Fields map[Field]string
}

func (e *ValidationError) Error() string { return MsgInvalidForm }

func (e *ValidationError) Unwrap() error { return ErrInvalidForm }

// Mode tells whether a form creates a new movie or edits an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Draft carries the writable movie fields while they are being edited.
// Rating is nil when the input is blank or not a number.
type Draft struct {
	Name        string        `form:"name" validate:"required,min=2,max=100"`
	PosterPath  string        `form:"posterPath" validate:"required,imageurl"`
	Description string        `form:"description" validate:"required,min=10,max=1000"`
	Rating      *float64      `form:"rating" validate:"required,min=0,max=10"`
	Status      models.Status `form:"status" validate:"required"`
}

// Saver persists a payload. client.Client satisfies it.
type Saver interface {
	Create(ctx context.Context, m models.MovieRequest) (*models.Movie, error)
	Update(ctx context.Context, id int, m models.MovieRequest) (*models.Movie, error)
}

// ConfirmationPort asks the user a yes/no question.
type ConfirmationPort interface {
	Confirm(prompt string) bool
}

// Form is the state of one create or edit session.
type Form struct {
	mode      Mode
	id        int
	draft     Draft
	ratingRaw string
	touched   map[Field]bool
	dirty     map[Field]bool
	preview   string

	submitting atomic.Bool
}

// New returns an empty create-mode form with the default rating and status.
func New() *Form {
	zero := 0.0
	return &Form{
		mode:      ModeCreate,
		draft:     Draft{Rating: &zero, Status: models.StatusDraft},
		ratingRaw: "0",
		touched:   make(map[Field]bool),
		dirty:     make(map[Field]bool),
	}
}

// Hydrate returns an edit-mode form prefilled from m. It starts clean.
func Hydrate(m models.Movie) *Form {
	rating := m.Rating
	f := &Form{
		mode: ModeEdit,
		id:   m.ID,
		draft: Draft{
			Name:        m.Name,
			PosterPath:  m.PosterPath,
			Description: m.Description,
			Rating:      &rating,
			Status:      m.Status,
		},
		ratingRaw: strconv.FormatFloat(rating, 'f', -1, 64),
		touched:   make(map[Field]bool),
		dirty:     make(map[Field]bool),
	}
	f.refreshPreview()
	return f
}

func (f *Form) Mode() Mode   { return f.mode }
func (f *Form) ID() int      { return f.id }
func (f *Form) Draft() Draft { return f.draft }

// Submitting reports whether a save is in flight.
func (f *Form) Submitting() bool { return f.submitting.Load() }

// Set stores raw as the new value of field and marks it dirty and touched.
func (f *Form) Set(field Field, raw string) error {
	switch field {
	case FieldName:
		f.draft.Name = raw
	case FieldPosterPath:
		f.draft.PosterPath = raw
		f.refreshPreview()
	case FieldDescription:
		f.draft.Description = raw
	case FieldRating:
		f.ratingRaw = raw
		f.draft.Rating = parseRating(raw)
	case FieldStatus:
		f.draft.Status = models.Status(strings.TrimSpace(raw))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	f.dirty[field] = true
	f.touched[field] = true
	return nil
}

func parseRating(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Value returns the current input text of field.
func (f *Form) Value(field Field) string {
	switch field {
	case FieldName:
		return f.draft.Name
	case FieldPosterPath:
		return f.draft.PosterPath
	case FieldDescription:
		return f.draft.Description
	case FieldRating:
		return f.ratingRaw
	case FieldStatus:
		return string(f.draft.Status)
	}
	return ""
}

func (f *Form) Touch(field Field) { f.touched[field] = true }

func (f *Form) TouchAll() {
	for _, field := range Fields {
		f.touched[field] = true
	}
}

// Dirty reports whether any field was changed by the user.
func (f *Form) Dirty() bool {
	for _, d := range f.dirty {
		if d {
			return true
		}
	}
	return false
}

func (f *Form) Valid() bool { return len(check(f.draft)) == 0 }

// Errors returns the message of every invalid field, touched or not.
func (f *Form) Errors() map[Field]string { return check(f.draft) }

// FieldError returns the message for field once it was touched or changed.
func (f *Form) FieldError(field Field) string {
	if !f.touched[field] && !f.dirty[field] {
		return ""
	}
	return check(f.draft)[field]
}

// FieldClass returns "is-valid" or "is-invalid" for a touched or changed
// field and "" otherwise.
func (f *Form) FieldClass(field Field) string {
	if !f.touched[field] && !f.dirty[field] {
		return ""
	}
	if _, bad := check(f.draft)[field]; bad {
		return "is-invalid"
	}
	return "is-valid"
}

// CharCount counts the code points typed into a text field.
func (f *Form) CharCount(field Field) int {
	switch field {
	case FieldName, FieldPosterPath, FieldDescription:
		return utf8.RuneCountInString(f.Value(field))
	}
	return 0
}

// MaxLength returns the length limit of field, 0 when it has none.
func (f *Form) MaxLength(field Field) int {
	switch field {
	case FieldName:
		return 100
	case FieldDescription:
		return 1000
	}
	return 0
}

func (f *Form) refreshPreview() {
	if IsImageURL(f.draft.PosterPath) {
		f.preview = f.draft.PosterPath
		return
	}
	f.preview = ""
}

// ImagePreview returns the poster URL to preview, or "" when there is none.
func (f *Form) ImagePreview() string { return f.preview }

// ClearPreview drops the preview, as when the image fails to load.
func (f *Form) ClearPreview() { f.preview = "" }

// RatingProgress maps the rating onto a 0-100 bar.
func (f *Form) RatingProgress() float64 {
	if f.draft.Rating == nil {
		return 0
	}
	return *f.draft.Rating / 10 * 100
}

// Tier buckets a rating for colouring.
type Tier string

const (
	TierGood    Tier = "good"
	TierWarning Tier = "warning"
	TierPoor    Tier = "poor"
)

func (t Tier) Color() string {
	switch t {
	case TierGood:
		return "#4caf50"
	case TierWarning:
		return "#ff9800"
	}
	return "#f44336"
}

func (f *Form) RatingTier() Tier {
	var r float64
	if f.draft.Rating != nil {
		r = *f.draft.Rating
	}
	switch {
	case r >= 7:
		return TierGood
	case r >= 5:
		return TierWarning
	}
	return TierPoor
}

// Payload converts the draft to the write payload.
func (f *Form) Payload() models.MovieRequest {
	var rating float64
	if f.draft.Rating != nil {
		rating = *f.draft.Rating
	}
	return models.MovieRequest{
		Name:        f.draft.Name,
		PosterPath:  f.draft.PosterPath,
		Description: f.draft.Description,
		Rating:      rating,
		Status:      f.draft.Status,
	}
}

// Submit validates the draft and saves it through s. An invalid draft
// returns *ValidationError without calling s; a second Submit while one is
// running returns ErrBusy.
func (f *Form) Submit(ctx context.Context, s Saver) (*models.Movie, error) {
	if !f.submitting.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer f.submitting.Store(false)

	f.TouchAll()
	if errs := check(f.draft); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	var (
		saved *models.Movie
		err   error
	)
	if f.mode == ModeEdit {
		saved, err = s.Update(ctx, f.id, f.Payload())
	} else {
		saved, err = s.Create(ctx, f.Payload())
	}
	if err != nil {
		return nil, fmt.Errorf("%s movie: %w", f.mode, err)
	}

	clear(f.dirty)
	return saved, nil
}

// Cancel reports whether the draft may be discarded, asking c first when
// there are unsaved changes.
func (f *Form) Cancel(c ConfirmationPort) bool {
	if !f.Dirty() {
		return true
	}
	return c.Confirm(MsgLeave)
}
