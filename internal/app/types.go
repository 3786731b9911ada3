package app

import "osa-filters/internal/filters"

type EvalRequest struct {
	Filter string
	Args   filters.Args
}

type EvalResult struct {
	Value any
}

type LintRequest struct {
	Requirements []string
}

type LintIssue struct {
	Line        int    `yaml:"line" json:"line"`
	Requirement string `yaml:"requirement" json:"requirement"`
	Reason      string `yaml:"reason" json:"reason"`
}

type LintResult struct {
	Checked int         `yaml:"checked" json:"checked"`
	Issues  []LintIssue `yaml:"issues" json:"issues"`
}
