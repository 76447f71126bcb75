package services

import (
	"fmt"
	"strings"

	"expense-bot/internal/dto"
	"expense-bot/internal/models"
	"expense-bot/internal/parser"

	"github.com/shopspring/decimal"
)

// CallbackCategoryPrefix prefixes category buttons' callback data
const CallbackCategoryPrefix = "cat:"

const keyboardColumns = 2

const usageExamples = "Примеры:\n" +
	"• 500 кофе\n" +
	"• такси 350\n" +
	"• пятихатка на продукты\n" +
	"• 1200,50"

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " ₽"
}

func startMessage(firstName string) string {
	name := strings.TrimSpace(firstName)
	if name == "" {
		name = "друг"
	}
	return fmt.Sprintf("Привет, %s! 👋\n\n"+
		"Я записываю расходы. Просто напиши сумму и на что потратил, "+
		"а я сам определю категорию.\n\n%s\n\n"+
		"Команды: /stats, /categories, /cancel, /help", name, usageExamples)
}

func helpMessage(taxonomy *parser.Taxonomy) string {
	var b strings.Builder
	b.WriteString("Отправь сообщение с суммой и описанием.\n\n")
	b.WriteString(usageExamples)
	b.WriteString("\n\nЕсли указана только сумма, я предложу выбрать категорию.\n\n")
	b.WriteString(categoriesMessage(taxonomy))
	b.WriteString("\n\n/stats - расходы за месяц\n/cancel - отменить ожидающую сумму")
	return b.String()
}

func categoriesMessage(taxonomy *parser.Taxonomy) string {
	var b strings.Builder
	b.WriteString("Категории:")
	for _, option := range taxonomy.Options() {
		b.WriteString("\n")
		b.WriteString(option.Name)
	}
	return b.String()
}

func parseFailedMessage() string {
	return "Не удалось распознать сумму 🤔\n\n" + usageExamples
}

func chooseCategoryMessage(pending *models.PendingAmount) string {
	if pending.Description != "" {
		return fmt.Sprintf("Сумма: %s (%s)\nВыбери категорию:", formatAmount(pending.Amount), pending.Description)
	}
	return fmt.Sprintf("Сумма: %s\nВыбери категорию:", formatAmount(pending.Amount))
}

func expenseRecordedMessage(expense *models.Expense, taxonomy *parser.Taxonomy) string {
	var b strings.Builder
	b.WriteString("✅ Записано: ")
	b.WriteString(formatAmount(expense.Amount))
	if expense.Description != "" {
		b.WriteString("\n📝 ")
		b.WriteString(expense.Description)
	}
	b.WriteString("\n🏷 ")
	b.WriteString(categoryLabel(taxonomy, expense.CategoryID))
	return b.String()
}

func statsMessage(stats *models.ExpenseStats, taxonomy *parser.Taxonomy) string {
	if stats.ExpenseCount == 0 {
		return "В этом месяце расходов пока нет."
	}

	var b strings.Builder
	b.WriteString("📊 Расходы за месяц:\n")
	for _, item := range stats.Categories {
		fmt.Fprintf(&b, "\n%s: %s (%d)", categoryLabel(taxonomy, item.CategoryID), formatAmount(item.TotalAmount), item.ExpenseCount)
	}
	fmt.Fprintf(&b, "\n\nИтого: %s", formatAmount(stats.TotalAmount))
	return b.String()
}

func cancelMessage(cancelled bool) string {
	if cancelled {
		return "Ожидающая сумма отменена."
	}
	return "Нечего отменять."
}

func unknownCommandMessage() string {
	return "Неизвестная команда. Список команд: /help"
}

const (
	callbackNoPending       = "Нет суммы, ожидающей категорию. Отправь сумму ещё раз."
	callbackUnknownCategory = "Неизвестная категория."
	callbackUnknownAction   = "Неизвестное действие."
	callbackSaved           = "Сохранено"
	saveFailedMessage       = "Не удалось сохранить расход, попробуй ещё раз позже."
)

func categoryLabel(taxonomy *parser.Taxonomy, id string) string {
	if category, ok := taxonomy.ByID(id); ok {
		return category.Name
	}
	return id
}

// categoryKeyboard lays the taxonomy options out in rows of keyboardColumns
func categoryKeyboard(taxonomy *parser.Taxonomy) *dto.InlineKeyboardMarkup {
	options := taxonomy.Options()
	rows := make([][]dto.InlineKeyboardButton, 0, (len(options)+keyboardColumns-1)/keyboardColumns)

	for i := 0; i < len(options); i += keyboardColumns {
		end := min(i+keyboardColumns, len(options))
		row := make([]dto.InlineKeyboardButton, 0, keyboardColumns)
		for _, option := range options[i:end] {
			row = append(row, dto.InlineKeyboardButton{
				Text:         option.Name,
				CallbackData: CallbackCategoryPrefix + option.ID,
			})
		}
		rows = append(rows, row)
	}

	return &dto.InlineKeyboardMarkup{InlineKeyboard: rows}
}
