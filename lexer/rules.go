// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/php/php-src/blob/PHP-5.1/ext/date/lib/parse_date.re

import (
	"regexp"
)

type (
	// rule pairs a compiled pattern with the Item it produces.
	rule struct {
		re   *regexp.Regexp
		id   ItemID
		rule RuleID
	}

	// ruleSource is the uncompiled form of a rule.
	ruleSource struct {
		id      ItemID
		rule    RuleID
		pattern string
	}
)

// Grammar rules, in declaration order.
//
// The order breaks ties between matches of equal length; reordering changes the scanner's output.
const (
	_ RuleID = iota
	RuleYesterday
	RuleNow
	RuleNoon
	RuleMidnight
	RuleTomorrow
	RuleTimestamp
	RuleTime12
	RuleTime24
	RuleTime24Zone
	RuleGNUNoColon
	RuleISONoColon
	RuleAmerican
	RuleISODate4
	RuleGNUDateShort
	RuleDateFull
	RulePointedDate4
	RulePointedDate2
	RuleDateNoDay
	RuleDateNoDayRev
	RuleGNUDateShorter
	RuleDateTextual
	RuleDateNoYear
	RuleDateNoYearRev
	RuleDateNoColon
	RuleXMLRPCSOAP
	RulePgYearday
	RuleISOWeekDay
	RuleISOWeek
	RulePgTextShort
	RulePgTextReverse
	RuleCLF
	RuleYear4
	RuleAgo
	RuleRelativeText
	RuleWeekday
	RuleMonth
	RuleTimezone
	RuleShortdateWithTime
	RuleRelative
	ruleSkip
)

// itemSkip marks separators, these are consumed & never emitted.
const itemSkip ItemID = -1

// Pattern fragments.
const (
	space = `[ \t]+`
	frac  = `\.[0-9]+`

	hour24   = `(?:2[0-4]|[01]?[0-9])`
	hour24lz = `(?:[01][0-9]|2[0-4])`
	hour12   = `(?:1[0-2]|0?[1-9])`
	minute   = `[0-5]?[0-9]`
	minutelz = `[0-5][0-9]`
	second   = `(?:60|[0-5]?[0-9])`
	secondlz = `(?:60|[0-5][0-9])`
	meridian = `[ap]\.?m\.?(?:[ \t]|$)`

	tzCorrection = `(?:gmt|utc)?[+-]` + hour24 + `:?(?:` + minute + `)?`
	tzName       = `\(?[a-z]{1,6}\)?|[a-z]+(?:[_/][a-z]+)+`
	// tzAbbr is case-sensitive, trailing words after a time are otherwise mistaken for zones.
	tzAbbr = `(?-i:\(?[A-Z]{1,6}\)?|[A-Z][a-z]+(?:[_/][A-Z][a-z]+)+)`

	// Month & day positions accept any 1-2 digits; range checks happen during resolution.
	month = `[0-9]{1,2}`
	day   = `[0-9]{1,2}(?:st|nd|rd|th)?`
	year  = `[0-9]{1,4}`
	year2 = `[0-9]{2}`
	year4 = `[0-9]{4}`

	monthlz    = `(?:0[1-9]|1[0-2])`
	daylz      = `(?:0[1-9]|[12][0-9]|3[01])`
	dayOfYear  = `(?:00[1-9]|0[1-9][0-9]|[12][0-9][0-9]|3[0-5][0-9]|36[0-6])`
	weekOfYear = `(?:0[1-9]|[1-4][0-9]|5[0-3])`

	dayFull = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`
	dayAbbr = `sun|mon|tue|wed|thu|fri|sat`
	dayText = `(?:` + dayFull + `|` + dayAbbr + `)`

	monthFull  = `january|february|march|april|may|june|july|august|september|october|november|december`
	monthAbbr  = `(?:jan|feb|mar|apr|may|jun|jul|aug|sept|sep|oct|nov|dec)`
	monthRoman = `xii|xi|x|ix|viii|vii|vi|v|iv|iii|ii|i`
	monthText  = `(?:` + monthFull + `|` + monthAbbr + `|` + monthRoman + `)`

	relTextNumber = `first|second|third|fourth|fifth|sixth|seventh|eighth|eight|ninth|tenth|eleventh|twelfth`
	relTextText   = `next|last|previous|this`
	relUnit       = `(?:(?:sec|second|min|minute|hour|day|week|fortnight|forthnight|month|year)s?|` + dayText + `)`
	relNumber     = `[+-]*[ \t]*[0-9]+`

	time24Tail = `[:.]` + minute + `(?:[:.]` + second + `(?:` + frac + `)?)?`
	zoneTail   = `[ \t]*(?:` + tzCorrection + `|` + tzAbbr + `)`
)

var grammar = []ruleSource{
	{ItemRelative, RuleYesterday, `yesterday`},
	{ItemRelative, RuleNow, `now`},
	{ItemRelative, RuleNoon, `noon`},
	{ItemRelative, RuleMidnight, `midnight|today`},
	{ItemRelative, RuleTomorrow, `tomorrow`},
	{ItemRelative, RuleTimestamp, `@-?[0-9]+`},

	{ItemTime12, RuleTime12, hour12 + `(?:[:.]` + minute + `(?:[:.]` + second + `)?)?[ \t]*` + meridian},
	{ItemTime24WithZone, RuleTime24, `t?` + hour24 + time24Tail},
	{ItemTime24WithZone, RuleTime24Zone, `t?` + hour24 + `[:.]` + minute + `[:.]` + secondlz + `(?:` + frac + `)?` + zoneTail},
	{ItemGNUNoColon, RuleGNUNoColon, `t?` + hour24lz + minutelz},
	{ItemISONoColon, RuleISONoColon, `t?` + hour24lz + minutelz + secondlz + `(?:` + tzCorrection + `)?`},

	{ItemAmerican, RuleAmerican, month + `/` + day + `(?:/` + year + `)?`},
	{ItemISODate, RuleISODate4, year4 + `(?:-` + monthlz + `-` + daylz + `|/` + month + `/` + day + `/?)`},
	{ItemISODate, RuleGNUDateShort, year + `-` + month + `-` + day},
	{ItemDateFull, RuleDateFull, day + `[ \t.-]*` + monthText + `[ \t.-]*` + year},
	{ItemDateFullPointed, RulePointedDate4, day + `[.\t-]` + month + `[.-]` + year4},
	{ItemDateFullPointed, RulePointedDate2, day + `[.\t]` + month + `\.` + year2},
	{ItemDateNoDay, RuleDateNoDay, monthText + `[ .\t-]*` + year4},
	{ItemDateNoDay, RuleDateNoDayRev, year4 + `[ .\t-]*` + monthText},
	{ItemDateNoDay, RuleGNUDateShorter, year4 + `-` + month},
	{ItemDateText, RuleDateTextual, monthText + `[ .\t-]*` + day + `[,.stndrh\t ]*` + year},
	{ItemDateText, RuleDateNoYear, monthText + `[ .\t-]*` + day + `[,.stndrh\t ]*`},
	{ItemDateText, RuleDateNoYearRev, day + `[ .\t-]*` + monthText},
	{ItemDateNoColon, RuleDateNoColon, year4 + monthlz + daylz},
	{ItemXMLRPCSOAP, RuleXMLRPCSOAP, year4 + monthlz + daylz + `t` + hour24 + minutelz + secondlz +
		`|` + year4 + `-` + monthlz + `-` + daylz + `t` + hour24lz + `:` + minutelz + `:` + secondlz + frac + `(?:` + tzCorrection + `|z)?` +
		`|` + year4 + `-` + month + `-` + day + `t` + hour24 + `:` + minute + `:` + second},
	{ItemPgYearday, RulePgYearday, year4 + `\.?` + dayOfYear},
	{ItemISOWeek, RuleISOWeekDay, year4 + `-?w` + weekOfYear + `-?[0-7]`},
	{ItemISOWeek, RuleISOWeek, year4 + `-?w` + weekOfYear},
	{ItemPgText, RulePgTextShort, monthAbbr + `-` + daylz + `-` + year},
	{ItemPgText, RulePgTextReverse, year + `-` + monthAbbr + `-` + daylz},
	{ItemCLF, RuleCLF, day + `/` + monthAbbr + `/` + year4 + `:` + hour24lz + `:` + minutelz + `:` + secondlz + space + tzCorrection},
	{ItemCLF, RuleYear4, year4},

	{ItemAgo, RuleAgo, `ago`},
	{ItemRelative, RuleRelativeText, `(?:` + relTextNumber + `|` + relTextText + `)` + space + relUnit},
	{ItemWeekday, RuleWeekday, dayText},
	{ItemDateText, RuleMonth, monthFull + `|` + monthAbbr},
	{ItemTimezone, RuleTimezone, tzCorrection + `|` + tzName},
	{ItemShortdateWithTime, RuleShortdateWithTime, monthText + `[ .\t-]*` + day + `[,.stndrh\t ]*t?` + hour24 +
		`[:.]` + minute + `(?:[:.]` + secondlz + `(?:` + frac + `)?(?:` + zoneTail + `)?)?`},
	{ItemRelative, RuleRelative, relNumber + `[ \t]*` + relUnit},

	{itemSkip, ruleSkip, `[ \t\r\n,.]+`},
}

var ruleNames = map[RuleID]string{
	RuleYesterday:         "yesterday",
	RuleNow:               "now",
	RuleNoon:              "noon",
	RuleMidnight:          "midnight",
	RuleTomorrow:          "tomorrow",
	RuleTimestamp:         "timestamp",
	RuleTime12:            "time12",
	RuleTime24:            "time24",
	RuleTime24Zone:        "time24_zone",
	RuleGNUNoColon:        "gnunocolon",
	RuleISONoColon:        "iso8601nocolon",
	RuleAmerican:          "american",
	RuleISODate4:          "iso8601date4",
	RuleGNUDateShort:      "gnudateshort",
	RuleDateFull:          "datefull",
	RulePointedDate4:      "pointeddate4",
	RulePointedDate2:      "pointeddate2",
	RuleDateNoDay:         "datenoday",
	RuleDateNoDayRev:      "datenodayrev",
	RuleGNUDateShorter:    "gnudateshorter",
	RuleDateTextual:       "datetextual",
	RuleDateNoYear:        "datenoyear",
	RuleDateNoYearRev:     "datenoyearrev",
	RuleDateNoColon:       "datenocolon",
	RuleXMLRPCSOAP:        "xmlrpc_soap",
	RulePgYearday:         "pgydotd",
	RuleISOWeekDay:        "isoweekday",
	RuleISOWeek:           "isoweek",
	RulePgTextShort:       "pgtextshort",
	RulePgTextReverse:     "pgtextreverse",
	RuleCLF:               "clf",
	RuleYear4:             "year4",
	RuleAgo:               "ago",
	RuleRelativeText:      "relativetext",
	RuleWeekday:           "daytext",
	RuleMonth:             "monthtext",
	RuleTimezone:          "tz",
	RuleShortdateWithTime: "dateshortwithtime",
	RuleRelative:          "relative",
	ruleSkip:              "skip",
}

// defRules is the compiled grammar shared by all Scanners.
var defRules = compile(grammar)

// String is the fmt.Stringer implementation for RuleID.
func (id RuleID) String() string {
	if name, ok := ruleNames[id]; ok {
		return name
	}

	return "unknown"
}

// compile anchors & compiles the grammar for leftmost-longest, case-insensitive matching.
func compile(src []ruleSource) (rules []rule) {
	rules = make([]rule, len(src))
	for index := range src {
		re := regexp.MustCompile(`^(?i:` + src[index].pattern + `)`)
		re.Longest()

		rules[index] = rule{re: re, id: src[index].id, rule: src[index].rule}
	}

	return
}
