package handle_message

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// dateInputPattern грамматика даты: день-месяц-год,
// разделители "-", "/" или "."
var dateInputPattern = regexp.MustCompile(`^(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})$`)

var errNotACalendarDate = errors.New("not a calendar date")

// looksLikeDate сообщает, совпадает ли ввод с грамматикой даты
// (совпадение еще не означает календарную корректность)
func looksLikeDate(input string) bool {
	return dateInputPattern.MatchString(input)
}

// parseDate парсит ввод жителя в дату.
// Возвращает errNotACalendarDate для календарно-некорректных значений
// вроде 31-02-2025.
func parseDate(input string) (time.Time, error) {
	m := dateInputPattern.FindStringSubmatch(input)
	if m == nil {
		return time.Time{}, errNotACalendarDate
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, errNotACalendarDate
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date нормализует переполнение (31 февраля -> 2 марта) -
	// проверяем, что компоненты не сдвинулись
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, errNotACalendarDate
	}

	return date, nil
}

// parseSlotNumber парсит ответ жителя как номер слота.
// Возвращает (0, false), если ввод не является целым числом.
func parseSlotNumber(input string) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
