package handle_message

// Request модель входящего сообщения от жителя
type Request struct {
	PhoneNumber string // Номер отправителя (E.164)
	Body        string // Текст сообщения
	DisplayName string // Имя отправителя из мессенджера
}

// Response модель ответа: ровно одно исходящее сообщение за ход
type Response struct {
	Reply string
}
