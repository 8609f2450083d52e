package models

type Status string

const (
	StatusReading    Status = "reading"
	StatusCompleted  Status = "completed"
	StatusWantToRead Status = "want-to-read"
)

type Book struct {
	Id           int    `yaml:"id" validate:"required,gt=0"`
	Title        string `yaml:"title" validate:"required"`
	Author       string `yaml:"author" validate:"required"`
	Genre        string `yaml:"genre" validate:"required"`
	Status       Status `yaml:"status" validate:"required,oneof=reading completed want-to-read"`
	Progress     int    `yaml:"progress" validate:"min=0,max=100"`
	Pages        int    `yaml:"pages" validate:"gt=0"`
	Current_page int    `yaml:"current_page" validate:"min=0,ltefield=Pages"`
	Cover_color  string `yaml:"cover_color" validate:"required,hexcolor"`
	Date_added   string `yaml:"date_added" validate:"required,datetime=2006-01-02"`
}

type ShowcaseBook struct {
	Id       int    `yaml:"id" validate:"required,gt=0"`
	Title    string `yaml:"title" validate:"required"`
	Genre    string `yaml:"genre" validate:"required"`
	Progress int    `yaml:"progress" validate:"min=0,max=100"`
}

type RootResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
