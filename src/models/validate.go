package models

import (
	"strings"

	"finance-api/src/errs"
	"finance-api/src/util"
)

func missing(op string, fields ...util.Field) error {
	names := util.MissingFields(fields...)
	if len(names) == 0 {
		return nil
	}
	return errs.Invalid(op, "missing required field(s): "+strings.Join(names, ", "))
}

func (r AddTransactionRequest) Validate() error {
	if err := missing("add_transaction",
		util.Required("type", r.Type != nil),
		util.Required("amount", r.Amount != nil),
		util.Required("category_id", r.CategoryID != nil),
		util.Required("account_id", r.AccountID != nil),
	); err != nil {
		return err
	}
	if !util.ValidateTransactionType(*r.Type) {
		return errs.Invalid("add_transaction", "type must be income or expense, got "+*r.Type)
	}
	return nil
}

func (r AddAccountRequest) Validate() error {
	return missing("add_account",
		util.Required("name", r.Name != nil),
		util.Required("type", r.Type != nil),
	)
}

func (r AddGoalRequest) Validate() error {
	return missing("add_goal",
		util.Required("name", r.Name != nil),
		util.Required("target_amount", r.TargetAmount != nil),
		util.Required("icon", r.Icon != nil),
	)
}

func (r AddBudgetRequest) Validate() error {
	return missing("add_budget",
		util.Required("category_id", r.CategoryID != nil),
		util.Required("limit_amount", r.LimitAmount != nil),
	)
}

func (r UpdateGoalRequest) Validate() error {
	return missing("update_goal",
		util.Required("id", r.ID != nil),
		util.Required("current_amount", r.CurrentAmount != nil),
	)
}

func (r UpdateBudgetRequest) Validate() error {
	return missing("update_budget",
		util.Required("id", r.ID != nil),
		util.Required("limit_amount", r.LimitAmount != nil),
	)
}
