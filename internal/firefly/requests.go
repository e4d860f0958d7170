package firefly

// Request types accepted by the client. Field tags double as the tool
// input schema; see registry.SchemaConverter for the jsonschema tag format.

// PageRequest paginates a top-level list.
type PageRequest struct {
	Limit *int `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int `json:"page,omitempty" jsonschema:"description=Page number"`
}

// RangePageRequest paginates a list that can be limited to a date range.
type RangePageRequest struct {
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD"`
}

// IDRequest addresses a single resource.
type IDRequest struct {
	ID string `json:"id" jsonschema:"required,description=The ID of the resource"`
}

// IDPageRequest paginates a list that belongs to one resource.
type IDPageRequest struct {
	ID    string `json:"id" jsonschema:"required,description=The ID of the parent resource"`
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
}

// IDRangeRequest reads one resource, optionally with figures for a date
// range.
type IDRangeRequest struct {
	ID    string `json:"id" jsonschema:"required,description=The ID of the resource"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD, to include spent and earned info"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD, to include spent and earned info"`
}

// TransactionsOfRequest lists the transactions linked to one resource.
type TransactionsOfRequest struct {
	ID    string `json:"id" jsonschema:"required,description=The ID of the parent resource"`
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD"`
	Type  string `json:"type,omitempty" jsonschema:"enum=all|withdrawal|withdrawals|expense|deposit|deposits|income|transfer|transfers|opening_balance|reconciliation|special|specials|default,description=Optional filter on the transaction type(s) returned"`
}

// AccountListRequest filters the account list.
type AccountListRequest struct {
	Type  string `json:"type,omitempty" jsonschema:"enum=all|asset|cash|expense|revenue|special|hidden|liability|liabilities|Default account|Cash account|Asset account|Expense account|Revenue account|Initial balance account|Beneficiary account|Import account|Reconciliation account|Loan|Debt|Mortgage,default=all,description=Filter by account type"`
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Pagination limit"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Date  string `json:"date,omitempty" jsonschema:"format=date,description=Balance date (ISO format)"`
}

// AccountGetRequest reads one account, optionally with its balance on a
// given day.
type AccountGetRequest struct {
	ID   string `json:"id" jsonschema:"required,description=Id of the account"`
	Date string `json:"date,omitempty" jsonschema:"format=date,description=A date formatted YYYY-MM-DD. When added to the request, Firefly III will show the account's balance on that day."`
}

type AccountUpdateRequest struct {
	ID            string        `json:"id" jsonschema:"required,description=The ID of the account."`
	AccountUpdate AccountUpdate `json:"account_update" jsonschema:"required,description=The updated account data."`
}

type TransactionListRequest struct {
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD"`
	Type  string `json:"type,omitempty" jsonschema:"enum=all|withdrawal|withdrawals|expense|deposit|deposits|income|transfer|transfers|opening_balance|reconciliation|special|specials|default,description=Optional filter on the transaction type(s) returned"`
}

type TransactionUpdateRequest struct {
	ID                string            `json:"id" jsonschema:"required,description=The ID of the transaction"`
	TransactionUpdate TransactionUpdate `json:"transaction_update" jsonschema:"required,description=The updated transaction data"`
}

// BulkCategorizeRequest assigns one category to many transactions.
type BulkCategorizeRequest struct {
	TransactionIDs []int  `json:"transaction_ids" jsonschema:"required,description=List of transaction IDs to categorize"`
	CategoryName   string `json:"category_name" jsonschema:"required,description=Name of the category to assign"`
}

// BulkTagRequest assigns tags to many transactions.
type BulkTagRequest struct {
	TransactionIDs []int    `json:"transaction_ids" jsonschema:"required,description=List of transaction IDs to tag"`
	TagNames       []string `json:"tag_names" jsonschema:"required,description=List of tag names to assign"`
}

type BudgetUpdateRequest struct {
	ID           string       `json:"id" jsonschema:"required,description=The ID of the budget"`
	BudgetUpdate BudgetUpdate `json:"budget_update" jsonschema:"required,description=The updated budget data"`
}

// BudgetLimitsRequest lists the limits of one budget.
type BudgetLimitsRequest struct {
	ID    string `json:"id" jsonschema:"required,description=The ID of the budget"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date (YYYY-MM-DD)"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date (YYYY-MM-DD)"`
}

// BudgetLimitRequest addresses one budget limit.
type BudgetLimitRequest struct {
	BudgetID string `json:"budget_id" jsonschema:"required,description=The ID of the budget"`
	LimitID  string `json:"limit_id" jsonschema:"required,description=The ID of the budget limit"`
}

type BudgetLimitCreateRequest struct {
	BudgetID         string           `json:"budget_id" jsonschema:"required,description=The ID of the budget"`
	BudgetLimitStore BudgetLimitStore `json:"budget_limit_store" jsonschema:"required,description=The budget limit data to create"`
}

type BudgetLimitUpdateRequest struct {
	BudgetID    string      `json:"budget_id" jsonschema:"required,description=The ID of the budget"`
	LimitID     string      `json:"limit_id" jsonschema:"required,description=The ID of the budget limit"`
	BudgetLimit BudgetLimit `json:"budget_limit" jsonschema:"required,description=The updated budget limit data"`
}

// BudgetTransactionsRequest takes a free-form type filter, unlike the other
// transaction listings.
type BudgetTransactionsRequest struct {
	ID    string `json:"id" jsonschema:"required,description=The ID of the budget"`
	Limit *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page  *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Start string `json:"start,omitempty" jsonschema:"format=date,description=Start date (YYYY-MM-DD)"`
	End   string `json:"end,omitempty" jsonschema:"format=date,description=End date (YYYY-MM-DD)"`
	Type  string `json:"type,omitempty" jsonschema:"description=Transaction type filter"`
}

type CategoryUpdateRequest struct {
	ID             string         `json:"id" jsonschema:"required,description=The ID of the category"`
	CategoryUpdate CategoryUpdate `json:"category_update" jsonschema:"required,description=The updated category data"`
}

type TagUpdateRequest struct {
	ID        string         `json:"id" jsonschema:"required,description=The ID or name of the tag"`
	TagUpdate TagModelUpdate `json:"tag_update" jsonschema:"required,description=The updated tag data"`
}

type RuleUpdateRequest struct {
	ID         string     `json:"id" jsonschema:"required,description=The ID of the rule"`
	RuleUpdate RuleUpdate `json:"rule_update" jsonschema:"required,description=The updated rule data"`
}

// RuleRunRequest limits a rule test or trigger to a date range and a set
// of accounts.
type RuleRunRequest struct {
	ID       string `json:"id" jsonschema:"required,description=The ID of the rule"`
	Start    string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD to limit transactions"`
	End      string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD to limit transactions"`
	Accounts []int  `json:"accounts,omitempty" jsonschema:"description=Limit to these asset accounts or liabilities"`
}

type RuleGroupUpdateRequest struct {
	ID              string          `json:"id" jsonschema:"required,description=The ID of the rule group"`
	RuleGroupUpdate RuleGroupUpdate `json:"rule_group_update" jsonschema:"required,description=The updated rule group data"`
}

// RuleGroupTestRequest adds search limits to RuleRunRequest.
type RuleGroupTestRequest struct {
	ID             string `json:"id" jsonschema:"required,description=The ID of the rule group"`
	Limit          *int   `json:"limit,omitempty" jsonschema:"description=Number of items per page"`
	Page           *int   `json:"page,omitempty" jsonschema:"description=Page number"`
	Start          string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD to limit transactions"`
	End            string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD to limit transactions"`
	SearchLimit    *int   `json:"search_limit,omitempty" jsonschema:"description=Maximum number of transactions Firefly III will try"`
	TriggeredLimit *int   `json:"triggered_limit,omitempty" jsonschema:"description=Maximum number of transactions the rule group can trigger on"`
	Accounts       []int  `json:"accounts,omitempty" jsonschema:"description=Limit testing to these asset accounts or liabilities"`
}

type RuleGroupTriggerRequest struct {
	ID       string `json:"id" jsonschema:"required,description=The ID of the rule group"`
	Start    string `json:"start,omitempty" jsonschema:"format=date,description=Start date formatted YYYY-MM-DD to limit transactions"`
	End      string `json:"end,omitempty" jsonschema:"format=date,description=End date formatted YYYY-MM-DD to limit transactions"`
	Accounts []int  `json:"accounts,omitempty" jsonschema:"description=Limit triggering to these asset accounts or liabilities"`
}

type BillUpdateRequest struct {
	ID         string     `json:"id" jsonschema:"required,description=The ID of the bill"`
	BillUpdate BillUpdate `json:"bill_update" jsonschema:"required,description=The updated bill data"`
}

type PiggyBankUpdateRequest struct {
	ID              string          `json:"id" jsonschema:"required,description=The ID of the piggy bank"`
	PiggyBankUpdate PiggyBankUpdate `json:"piggy_bank_update" jsonschema:"required,description=The updated piggy bank data"`
}
