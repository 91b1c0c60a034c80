package sheets

// request is the body of every webhook call. The script dispatches on
// the action field; unused fields are omitted.
type request struct {
	Token  string `json:"token"`
	Action string `json:"action"`

	Type   string `json:"type,omitempty"`
	Date   string `json:"date,omitempty"`
	Amount string `json:"amount,omitempty"`
	Whom   string `json:"whom,omitempty"`
	Group  string `json:"group,omitempty"`
	What   string `json:"what,omitempty"`

	Period string `json:"period,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

const (
	actionAppend       = "append"
	actionDeleteLast   = "delete_last"
	actionStats        = "stats"
	actionGroupTotals  = "group_totals"
	actionTopPayers    = "top_payers"
	actionTransactions = "transactions"
)

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`

	// Stats fields, top level in the script's reply.
	Revenue   string         `json:"revenue,omitempty"`
	Expense   string         `json:"expense,omitempty"`
	MonthName string         `json:"monthName,omitempty"`
	TopGroups []groupPayload `json:"topGroups,omitempty"`

	Deleted      *recordPayload  `json:"deleted,omitempty"`
	Items        []groupPayload  `json:"items,omitempty"`
	Payers       []payerPayload  `json:"payers,omitempty"`
	Transactions []recordPayload `json:"transactions,omitempty"`
}

type recordPayload struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Whom   string `json:"whom"`
	Group  string `json:"group"`
	What   string `json:"what"`
}

type groupPayload struct {
	Group  string `json:"group"`
	Amount string `json:"amount"`
}

type payerPayload struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Count int    `json:"count"`
}
