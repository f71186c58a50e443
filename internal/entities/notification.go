package entities

// Mail одно письмо транзакционному почтовому сервису.
type Mail struct {
	To      string
	ToName  string
	Subject string
	Text    string
	Tag     string
}
