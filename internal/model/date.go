package model

import (
	"regexp"
	"strconv"
	"time"

	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/errs"
)

// dateLayout is the wire format for transaction dates.
const dateLayout = "02.01.2006"

// dateInputPattern accepts ДД.ММ, ДД.ММ.ГГ and ДД.ММ.ГГГГ.
var dateInputPattern = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})(?:\.(\d{2,4}))?$`)

// FormatDate renders a time as DD.MM.YYYY.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDateInput parses free-text date input. The year defaults to the
// current one when omitted; a two-digit year is treated as 20xx.
// The returned date is normalized to DD.MM.YYYY.
func ParseDateInput(text string, now time.Time) (string, error) {
	matches := dateInputPattern.FindStringSubmatch(text)
	if matches == nil {
		return "", errs.New("Не понял дату. Формат: ДД.ММ или ДД.ММ.ГГГГ")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])

	year := now.Year()
	if matches[3] != "" {
		parsed, _ := strconv.Atoi(matches[3])
		if len(matches[3]) == 2 {
			parsed += 2000
		}
		year = parsed
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	// time.Date normalizes overflow (32.01 becomes 01.02), which would
	// silently accept an invalid calendar date.
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return "", errs.New("Такой даты не существует. Проверьте день и месяц.")
	}

	return FormatDate(date), nil
}

// DateQuickPick represents one of the date shortcut buttons.
type DateQuickPick string

const (
	// DateQuickPickToday selects the current day.
	DateQuickPickToday DateQuickPick = "today"
	// DateQuickPickYesterday selects the previous day.
	DateQuickPickYesterday DateQuickPick = "yesterday"
	// DateQuickPickDayBefore selects two days ago.
	DateQuickPickDayBefore DateQuickPick = "day_before"
)

// Resolve converts a quick pick into a concrete DD.MM.YYYY date.
func (p DateQuickPick) Resolve(now time.Time) (string, bool) {
	switch p {
	case DateQuickPickToday:
		return FormatDate(now), true
	case DateQuickPickYesterday:
		return FormatDate(now.AddDate(0, 0, -1)), true
	case DateQuickPickDayBefore:
		return FormatDate(now.AddDate(0, 0, -2)), true
	default:
		return "", false
	}
}

// Label returns the button caption for the quick pick.
func (p DateQuickPick) Label() string {
	switch p {
	case DateQuickPickToday:
		return "Сегодня"
	case DateQuickPickYesterday:
		return "Вчера"
	case DateQuickPickDayBefore:
		return "Позавчера"
	default:
		return string(p)
	}
}

// DateQuickPicks lists the shortcut buttons in display order.
var DateQuickPicks = []DateQuickPick{
	DateQuickPickToday, DateQuickPickYesterday, DateQuickPickDayBefore,
}
