package controller

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/project/libraryapi/internal/entity"
)

type (
	PostBookRequest struct {
		Title         string      `json:"title"`
		Author        string      `json:"author"`
		Genre         string      `json:"genre"`
		NumberOfPages flexibleInt `json:"numberOfPages"`
	}

	GetBookDetailsResponse struct {
		ID            int64  `json:"id"`
		Title         string `json:"title"`
		Author        string `json:"author"`
		Genre         string `json:"genre"`
		NumberOfPages int    `json:"numberOfPages"`
	}

	BookSummaryItem struct {
		ID     int64  `json:"id"`
		Title  string `json:"title"`
		Author string `json:"author"`
		Genre  string `json:"genre"`
	}

	GetBooksResponse struct {
		Data  []BookSummaryItem `json:"data"`
		Genre string            `json:"genre"`
		Count int               `json:"count"`
	}

	EnrollmentRequest struct {
		Class        string      `json:"class"`
		Student      string      `json:"student"`
		NumberOfDays flexibleInt `json:"numberOfDays"`
	}
)

var (
	errPagesRequired = validation.NewError("validation_pages_required", "cannot be blank")
	errPagesInteger  = validation.NewError("validation_pages_integer", "must be an integer")
	errPagesMin      = validation.NewError("validation_pages_min", "must be no less than 1")
)

// Validate reports every failing field of the request, keyed by its JSON name.
func (r PostBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, notBlank, validation.RuneLength(1, entity.MaxTitleLength)),
		validation.Field(&r.Author, validation.Required, notBlank, validation.RuneLength(1, entity.MaxAuthorLength)),
		validation.Field(&r.Genre, validation.Required, notBlank),
		validation.Field(&r.NumberOfPages, validation.By(validPageCount)),
	)
}

// notBlank rejects strings made only of whitespace, which Required lets through.
var notBlank = validation.By(func(value interface{}) error {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return validation.ErrRequired
	}
	return nil
})

func validPageCount(value interface{}) error {
	pages, _ := value.(flexibleInt)

	switch {
	case !pages.set:
		return errPagesRequired
	case !pages.valid:
		return errPagesInteger
	case pages.value < 1:
		return errPagesMin
	}

	return nil
}

func (r PostBookRequest) toEntity() entity.Book {
	return entity.Book{
		Title:         r.Title,
		Author:        r.Author,
		Genre:         r.Genre,
		NumberOfPages: r.NumberOfPages.value,
		InInventory:   true,
	}
}

func toDetails(b entity.Book) GetBookDetailsResponse {
	return GetBookDetailsResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		NumberOfPages: b.NumberOfPages,
	}
}

func toSummary(b entity.Book, _ int) BookSummaryItem {
	return BookSummaryItem{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Genre:  b.Genre,
	}
}

// flexibleInt accepts a JSON number or a numeric string. Malformed input is
// recorded instead of failing the decode so that validation can report it per field.
type flexibleInt struct {
	value int
	set   bool
	valid bool
}

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*f = flexibleInt{}
		return nil
	}

	f.set = true

	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		f.value, f.valid = n, true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err = strconv.Atoi(strings.TrimSpace(s)); err == nil {
			f.value, f.valid = n, true
		}
	}

	return nil
}

func (f flexibleInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(f.value)), nil
}
