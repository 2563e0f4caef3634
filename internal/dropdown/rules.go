package dropdown

import (
	"fmt"
	"regexp"

	"github.com/bankim/content-admin/internal/core/domain"
)

// Rule maps a case-insensitive pattern to a dropdown category.
type Rule struct {
	Name     string
	Category domain.Category
	Pattern  *regexp.Regexp
}

// RuleSet is an ordered, immutable list of classification rules.
// Evaluation stops at the first matching rule.
type RuleSet struct {
	rules []Rule
}

// NewRule compiles expr as a case-insensitive pattern.
func NewRule(name string, category domain.Category, expr string) (Rule, error) {
	re, err := regexp.Compile("(?i)" + expr)
	if err != nil {
		return Rule{}, fmt.Errorf("compile rule %s: %w", name, err)
	}

	return Rule{Name: name, Category: category, Pattern: re}, nil
}

// NewRuleSet copies rules into a new set, preserving order.
func NewRuleSet(rules ...Rule) RuleSet {
	return RuleSet{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the ordered rules.
func (s RuleSet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Len returns the number of rules.
func (s RuleSet) Len() int {
	return len(s.rules)
}

// Match returns the first rule whose pattern matches text.
func (s RuleSet) Match(text string) (Rule, bool) {
	for _, rule := range s.rules {
		if rule.Pattern.MatchString(text) {
			return rule, true
		}
	}

	return Rule{}, false
}

// Default rule patterns. Order matters: specific rules come before the
// general property/credit rules, and filter comes first because filter keys
// often also contain "type".
var defaultRuleDefs = []struct {
	name     string
	category domain.Category
	expr     string
}{
	{"filter", domain.CategoryFilter, `filter|search|sort|фильтр|поиск|сортировка|סינון|חיפוש|מיון`},
	{"property_ownership", domain.CategoryProperty, `ownership|владение|בעלות|property_ownership`},
	{"credit_type", domain.CategoryCredit, `mortgage.*type|credit.*type|type.*mortgage|type.*credit|тип.*ипотек|тип.*кредит|סוג.*משכנתא|סוג.*אשראי`},
	{"geographic", domain.CategoryGeographic, `city|location|region|country|citizenship|город|гражданство|страна|עיר|אזרחות|מדינה`},
	{"temporal", domain.CategoryTemporal, `when|time|period|duration|date|birth|birthday|рождения|срок|время|дата|когда|לידה|מתי|תקופה|זמן|יום הולדת`},
	{"boolean", domain.CategoryBoolean, `first|has_|is_|additional|первая|есть|имеется|ראשון|יש|первую`},
	{"financial", domain.CategoryFinancial, `price|payment|fee|amount|sum|cost|initial|monthly|стоимость|платеж|взнос|сумма|ежемесячный|первоначальный|מחיר|תשלום|עלות|חודשי`},
	{"personal", domain.CategoryPersonal, `family|status|employment|education|income|семейное|статус|работа|доходы|положение|משפחה|סטטוס|עבודה|הכנסה|משפחתי`},
	{"document", domain.CategoryDocument, `document|certificate|passport|документ|удостоверение|паспорт|מסמך|תעודה|דרכון`},
	{"property_general", domain.CategoryProperty, `property|type|недвижимость|тип|נכס|סוג`},
	{"credit_general", domain.CategoryCredit, `mortgage|credit|loan|purpose|history|ипотека|кредит|цель|история|משכנתא|אשראי|מטרה|היסטוריה`},
	{"generic", domain.CategoryGeneric, `.*`},
}

// DefaultRules builds the standard twelve-rule table ending in a catch-all.
// It is meant to be called once at start-up and passed to NewClassifier.
func DefaultRules() RuleSet {
	rules := make([]Rule, 0, len(defaultRuleDefs))

	for _, def := range defaultRuleDefs {
		rules = append(rules, Rule{
			Name:     def.name,
			Category: def.category,
			Pattern:  regexp.MustCompile("(?i)" + def.expr),
		})
	}

	return RuleSet{rules: rules}
}
