package dispatch

const (
	welcomeText = `👋 Привет! Я бот-этимолог.

/explain — разобрать слово по составу и происхождению
/cards — карточки: латинские и греческие числительные
/next — следующая карточка
/quiz — небольшая викторина по числительным`

	helpText = `Я не понял команду. Вот что я умею:

/explain — разобрать слово
/cards — карточки с числительными
/quiz — викторина`

	askWordText    = "Какое слово вы хотите разобрать?"
	emptyWordText  = "Пришли слово одним сообщением, без пустых строк."
	thinkingText   = "🔎 Думаю над словом: "
	fallbackText   = "Произошла ошибка при обработке запроса. Попробуй позже."
	lastCardText   = "🎉 Это была последняя карточка!"
	emptyDeckText  = "В колоде пока нет карточек."
	notANumberText = "Напиши ответ цифрами, например: 12"
)
