package model

// Group represents an expense group from the fixed catalog.
type Group string

// Groups is the ordered catalog of expense groups. The order defines
// how the selection keyboard is laid out and must stay stable because
// callback payloads reference groups by index.
var Groups = []Group{
	"поставщик",
	"зп",
	"возврат Илье",
	"инструм для раб",
	"командировки",
	"склад",
	"налоги",
	"доставка",
	"разведка",
	"подарки клиентам",
	"бензин и то",
	"транс комп",
	"сайт",
	"ИИ",
}

// GroupByIndex returns the group at the given catalog position.
func GroupByIndex(index int) (Group, bool) {
	if index < 0 || index >= len(Groups) {
		return "", false
	}
	return Groups[index], true
}
