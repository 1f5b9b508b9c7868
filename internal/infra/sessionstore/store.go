package sessionstore

import (
	"context"

	"github.com/m04kA/SMC-HallBookingService/internal/domain"
)

// Store хранилище диалоговых сессий, ключ - номер телефона (E.164).
//
// Обработчик входящих сообщений выполняет ровно один цикл
// read-modify-write на ход диалога и рассчитывает на семантику
// "один писатель на номер" (WhatsApp доставляет сообщения одного
// отправителя последовательно). Для деплоя в несколько процессов
// требуется внешняя реализация поверх durable-хранилища с атомарным
// обновлением - in-memory реализация этого не обеспечивает.
type Store interface {
	// Get возвращает состояние сессии или nil, если сессии нет
	// (или она истекла)
	Get(ctx context.Context, phoneNumber string) (*domain.ConversationState, error)

	// Put сохраняет состояние сессии, продлевая её TTL
	Put(ctx context.Context, phoneNumber string, state *domain.ConversationState) error

	// Delete удаляет сессию
	Delete(ctx context.Context, phoneNumber string) error
}
