package intake

import "fmt"

// Button labels shared between the menus the controller emits and the
// inputs it recognizes.
const (
	labelConnect        = "Подключиться"
	labelAccept         = "Принять"
	labelYes            = "Да"
	labelNo             = "Нет"
	labelBack           = "Назад"
	labelSkip           = "Пропустить"
	labelShareContact   = "Поделиться контактом"
	labelMainMenu       = "Главное меню"
	labelCabinet        = "Личный кабинет"
	labelFieldName      = "Имя"
	labelFieldCategory  = "Категория"
	labelFieldPlatform  = "Площадка"
	labelFieldOrder     = "Номер заказа"
	labelFieldContact   = "Контакт"
	labelFieldEmail     = "Email"
	labelFieldBirthday  = "Дата рождения"
)

const (
	textWelcome = "Здравствуйте! Мы рады, что вы выбрали нашу продукцию. " +
		"Нажмите «Подключиться», чтобы зарегистрировать покупку и получить подарок."
	textStartFirst = "Чтобы начать, отправьте команду /start."

	textNamePrompt = "Пожалуйста, введите свое имя на русском языке."

	textSubscribe = "Подпишитесь на наш канал, чтобы первыми узнавать о новинках %s и закрытых акциях."
	textFriendship = "Мы дорожим каждым покупателем и будем рады дружбе с вами: " +
		"делитесь впечатлениями о продукции, нам важно ваше мнение."
	textQuestions = "Если появятся вопросы, просто напишите их в этот чат — мы обязательно ответим."

	textInfoUse = "Для регистрации покупки нам понадобятся ваши контактные данные."
	textConsentPrompt = "Пожалуйста, ознакомьтесь с согласием на обработку данных. " +
		"Нажмите 'Принять', если вы согласны с условиями."
	textConsentThanks = "Спасибо за ваше согласие. Теперь выберите платформу, " +
		"на которой приобретали нашу продукцию."

	textChoosePlatform = "Выберите платформу, на которой приобретали нашу продукцию."
	textNoInstructions = "На данный момент у нас нет инструкций для выбранной платформы."

	textOrderPrompt   = "Пожалуйста, введите номер вашего заказа."
	textContactNeeded = "Теперь поделитесь, пожалуйста, номером телефона."
	textContactButton = "Нажмите кнопку ниже, чтобы отправить контакт."
	textContactOnly   = "Пожалуйста, используйте кнопку 'Поделиться контактом' для отправки номера телефона."

	textEmailPrompt  = "Укажите ваш email или нажмите 'Пропустить'."
	textEmailInvalid = "Некорректный email адрес. Пожалуйста, введите корректный " +
		"адрес электронной почты или нажмите 'Пропустить'."

	textBirthdayPrompt  = "Введите вашу дату рождения в формате ДД.ММ.ГГГГ."
	textBirthdayInvalid = "Некорректная дата. Пожалуйста, введите дату в формате ДД.ММ.ГГГГ."

	textMainMenu = "Привет! Вы в главном меню.\n\n" +
		"1. Используйте кнопки ниже для навигации.\n" +
		"2. Вы можете управлять своими данными или перейти в личный кабинет."

	textChangePrompt  = "Какие данные вы хотите изменить?"
	textChangeInvalid = "Некорректный выбор. Попробуйте еще раз."

	textNewName     = "Введите новое имя:"
	textNewCategory = "Введите новую категорию:"
	textNewOrder    = "Введите новый номер заказа:"
)

// categoryCases holds the genitive forms used in the subscribe message.
var categoryCases = map[string]string{
	"Постельное белье": "постельного белья",
	"Полотенца":        "полотенец",
	"Пледы":            "пледов",
}

func categoryCase(category string) string {
	if c, ok := categoryCases[category]; ok {
		return c
	}
	return "нашей продукции"
}

// introFor builds the category-specific greeting. Unknown categories get
// no intro, matching the historical behavior.
func introFor(name, category string) string {
	switch category {
	case "Постельное белье":
		return fmt.Sprintf("<b>%s</b>, спасибо за покупку! Вы выбрали категорию «%s» — "+
			"здоровый сон начинается с хорошего белья.", name, category)
	case "Полотенца":
		return fmt.Sprintf("<b>%s</b>, спасибо за покупку! Вы выбрали категорию «%s» — "+
			"мягкость, которая остаётся с вами каждый день.", name, category)
	case "Пледы":
		return fmt.Sprintf("<b>%s</b>, спасибо за покупку! Вы выбрали категорию «%s» — "+
			"уют для самых тёплых вечеров.", name, category)
	}
	return ""
}

func textPlatformReady(platform string) string {
	return fmt.Sprintf("Вы выбрали платформу: %s. Вы готовы ввести номер заказа?", platform)
}

func textSummaryConfirm(summary string) string {
	return fmt.Sprintf("Ваша информация:\n%s\nВсе ли данные верны?", summary)
}

func textCabinet(summary string) string {
	return fmt.Sprintf("Ваши данные:\n%s", summary)
}
