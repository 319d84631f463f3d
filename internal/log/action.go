package log

type Action = string

const (
	ListBooks       Action = "ListBooks"
	GetBook                = "GetBook"
	AddBook                = "AddBook"
	UpdateBookGenre        = "UpdateBookGenre"
	RemoveBook             = "RemoveBook"
	Enroll                 = "Enroll"
	Status                 = "Status"
)
