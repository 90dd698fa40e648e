// SPDX-License-Identifier: MIT
package lexer

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// RuleID identifies the grammar rule that produced an Item.
	//
	// Several rules share an ItemID while requiring different semantic actions.
	RuleID int

	// Item type holding the lexeme, position & item type of a scanned expression.
	Item struct {
		Err  error
		Val  string // The lexeme of this Item
		ID   ItemID // The type of this Item
		Rule RuleID // The rule matching this Item
		Pos  int    // The starting position, (in bytes) of this Item
		Len  int    // The length, (in bytes) of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_                     ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                           // Notify occurrence of an `error`.
	ItemEOF                             // End of the input
	ItemTimezone                        // `+0200`, `CEST`, `Europe/Paris`.
	ItemRelative                        // `+1 day`, `next week`, `tomorrow`, `@1700000000`.
	ItemAgo                             // `ago`.
	ItemWeekday                         // `friday`.
	ItemAmerican                        // `12/22/78`.
	ItemDateFull                        // `10 September 2000`.
	ItemDateFullPointed                 // `10.09.2000`.
	ItemDateText                        // `September 10, 2000`.
	ItemDateNoDay                       // `Sep 2000`.
	ItemDateNoColon                     // `20000910`.
	ItemISODate                         // `2000-09-10`.
	ItemISONoColon                      // `t135530`.
	ItemISOWeek                         // `2008W27-3`.
	ItemGNUNoColon                      // `1355` (time), `2000` (year) on second use.
	ItemPgYearday                       // `2000.254`.
	ItemPgText                          // `Sep-10-2000`.
	ItemTime12                          // `4:08:37 pm`.
	ItemTime24WithZone                  // `T13:55:30.25+02:00`.
	ItemShortdateWithTime               // `Sep 10 13:55`.
	ItemCLF                             // `10/Oct/2000:13:55:36 -0700`, bare `2000`.
	ItemXMLRPCSOAP                      // `20000910T13:55:30`, `2000-09-10T13:55:30.25Z`.
)

var itemNames = map[ItemID]string{
	ItemError:             "error",
	ItemEOF:               "eof",
	ItemTimezone:          "timezone",
	ItemRelative:          "relative",
	ItemAgo:               "ago",
	ItemWeekday:           "weekday",
	ItemAmerican:          "american",
	ItemDateFull:          "date_full",
	ItemDateFullPointed:   "date_full_pointed",
	ItemDateText:          "date_text",
	ItemDateNoDay:         "date_no_day",
	ItemDateNoColon:       "date_nocolon",
	ItemISODate:           "iso_date",
	ItemISONoColon:        "iso_nocolon",
	ItemISOWeek:           "iso_week",
	ItemGNUNoColon:        "gnu_nocolon",
	ItemPgYearday:         "pg_yearday",
	ItemPgText:            "pg_text",
	ItemTime12:            "time12",
	ItemTime24WithZone:    "time24_with_zone",
	ItemShortdateWithTime: "shortdate_with_time",
	ItemCLF:               "clf",
	ItemXMLRPCSOAP:        "xmlrpc_soap",
}

// String is the fmt.Stringer implementation for ItemID.
func (id ItemID) String() string {
	if name, ok := itemNames[id]; ok {
		return name
	}

	return "unknown"
}
