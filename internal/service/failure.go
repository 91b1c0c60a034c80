package service

import (
	"math/rand"

	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/model"
)

// failureReplies maps each failure category to its fixed pool of
// user-facing replies. One is chosen pseudo-randomly so the bot does not
// repeat itself word for word, while the tone stays consistent.
var failureReplies = map[model.FailureCategory][]string{
	model.FailureInvalidAmount: {
		"Нужно число. Попробуйте ещё раз.",
		"Не разобрал сумму. Напишите цифрами, например: 1234,56",
		"Это не похоже на сумму. Попробуйте ещё раз.",
	},
	model.FailureAmountOutOfRange: {
		"Сумма должна быть больше нуля и не больше 999 999 999,99.",
		"Слишком большая или нулевая сумма. Проверьте ввод.",
	},
	model.FailureTextTooLong: {
		"Слишком длинно. Уложитесь в 500 символов.",
		"Текст длиннее 500 символов. Сократите, пожалуйста.",
	},
	model.FailureGatewayTimeout: {
		"Таблица не ответила вовремя. Нажмите «Повторить».",
		"Похоже, таблица задумалась. Попробуйте повторить.",
	},
	model.FailureGatewayNetwork: {
		"Не получилось достучаться до таблицы. Нажмите «Повторить».",
		"Сеть подвела, запись не прошла. Попробуйте повторить.",
	},
	model.FailureGatewayBadResponse: {
		"Таблица ответила что-то странное. Нажмите «Повторить».",
		"Не удалось сохранить. Попробуйте повторить.",
	},
	model.FailureStaleInteraction: {
		"Эта кнопка уже неактуальна.",
	},
}

// responder picks a reply for a failure category using an injected
// random source, so tests can pin the source and assert pool membership.
type responder struct {
	rand *rand.Rand
}

func newResponder(source rand.Source) responder {
	return responder{rand: rand.New(source)}
}

// Pick returns one reply from the category's pool.
func (r responder) Pick(category model.FailureCategory) string {
	pool := failureReplies[category]
	if len(pool) == 0 {
		return "Что-то пошло не так. Попробуйте ещё раз."
	}

	return pool[r.rand.Intn(len(pool))]
}
