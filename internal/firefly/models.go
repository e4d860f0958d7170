package firefly

// Store and update bodies sent to Firefly III. Only the fields a client
// commonly sets are modelled; Firefly fills in the rest.

type AccountStore struct {
	Name               string   `json:"name" jsonschema:"required,description=Account name"`
	Type               string   `json:"type" jsonschema:"required,enum=asset|expense|import|revenue|cash|liability|liabilities|initial-balance|reconciliation,description=Account type"`
	IBAN               string   `json:"iban,omitempty"`
	BIC                string   `json:"bic,omitempty"`
	AccountNumber      string   `json:"account_number,omitempty"`
	OpeningBalance     string   `json:"opening_balance,omitempty" jsonschema:"description=Opening balance as a decimal string"`
	OpeningBalanceDate string   `json:"opening_balance_date,omitempty" jsonschema:"format=date"`
	VirtualBalance     string   `json:"virtual_balance,omitempty"`
	CurrencyID         string   `json:"currency_id,omitempty"`
	CurrencyCode       string   `json:"currency_code,omitempty"`
	Active             *bool    `json:"active,omitempty"`
	Order              *int     `json:"order,omitempty"`
	IncludeNetWorth    *bool    `json:"include_net_worth,omitempty"`
	AccountRole        string   `json:"account_role,omitempty" jsonschema:"enum=defaultAsset|sharedAsset|savingAsset|ccAsset|cashWalletAsset,description=Required for asset accounts"`
	CreditCardType     string   `json:"credit_card_type,omitempty" jsonschema:"enum=monthlyFull"`
	MonthlyPaymentDate string   `json:"monthly_payment_date,omitempty" jsonschema:"format=date"`
	LiabilityType      string   `json:"liability_type,omitempty" jsonschema:"enum=loan|debt|mortgage"`
	LiabilityDirection string   `json:"liability_direction,omitempty" jsonschema:"enum=credit|debit"`
	Interest           string   `json:"interest,omitempty"`
	InterestPeriod     string   `json:"interest_period,omitempty" jsonschema:"enum=weekly|monthly|quarterly|half-year|yearly"`
	Notes              string   `json:"notes,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	ZoomLevel          *int     `json:"zoom_level,omitempty"`
}

type AccountUpdate struct {
	Name               string   `json:"name" jsonschema:"required,description=Account name"`
	IBAN               string   `json:"iban,omitempty"`
	BIC                string   `json:"bic,omitempty"`
	AccountNumber      string   `json:"account_number,omitempty"`
	OpeningBalance     string   `json:"opening_balance,omitempty"`
	OpeningBalanceDate string   `json:"opening_balance_date,omitempty" jsonschema:"format=date"`
	VirtualBalance     string   `json:"virtual_balance,omitempty"`
	CurrencyID         string   `json:"currency_id,omitempty"`
	CurrencyCode       string   `json:"currency_code,omitempty"`
	Active             *bool    `json:"active,omitempty"`
	Order              *int     `json:"order,omitempty"`
	IncludeNetWorth    *bool    `json:"include_net_worth,omitempty"`
	AccountRole        string   `json:"account_role,omitempty" jsonschema:"enum=defaultAsset|sharedAsset|savingAsset|ccAsset|cashWalletAsset"`
	CreditCardType     string   `json:"credit_card_type,omitempty" jsonschema:"enum=monthlyFull"`
	MonthlyPaymentDate string   `json:"monthly_payment_date,omitempty" jsonschema:"format=date"`
	LiabilityType      string   `json:"liability_type,omitempty" jsonschema:"enum=loan|debt|mortgage"`
	Interest           string   `json:"interest,omitempty"`
	InterestPeriod     string   `json:"interest_period,omitempty" jsonschema:"enum=weekly|monthly|quarterly|half-year|yearly"`
	Notes              string   `json:"notes,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	ZoomLevel          *int     `json:"zoom_level,omitempty"`
}

type TransactionStore struct {
	ErrorIfDuplicateHash *bool                   `json:"error_if_duplicate_hash,omitempty" jsonschema:"description=Break if the submitted transaction exists already"`
	ApplyRules           *bool                   `json:"apply_rules,omitempty" jsonschema:"description=Whether or not to apply rules when submitting transaction"`
	FireWebhooks         *bool                   `json:"fire_webhooks,omitempty"`
	GroupTitle           string                  `json:"group_title,omitempty" jsonschema:"description=Title of the transaction if it has been split"`
	Transactions         []TransactionSplitStore `json:"transactions" jsonschema:"required,description=The splits of the transaction"`
}

type TransactionSplitStore struct {
	Type                string   `json:"type" jsonschema:"required,enum=withdrawal|deposit|transfer|reconciliation|opening balance"`
	Date                string   `json:"date" jsonschema:"required,description=Date of the transaction, YYYY-MM-DD or ISO 8601 with time"`
	Amount              string   `json:"amount" jsonschema:"required,description=Amount of the transaction as a decimal string"`
	Description         string   `json:"description" jsonschema:"required,description=Description of the transaction"`
	Order               *int     `json:"order,omitempty"`
	CurrencyID          string   `json:"currency_id,omitempty"`
	CurrencyCode        string   `json:"currency_code,omitempty"`
	ForeignAmount       string   `json:"foreign_amount,omitempty"`
	ForeignCurrencyID   string   `json:"foreign_currency_id,omitempty"`
	ForeignCurrencyCode string   `json:"foreign_currency_code,omitempty"`
	BudgetID            string   `json:"budget_id,omitempty"`
	BudgetName          string   `json:"budget_name,omitempty"`
	CategoryID          string   `json:"category_id,omitempty"`
	CategoryName        string   `json:"category_name,omitempty"`
	SourceID            string   `json:"source_id,omitempty" jsonschema:"description=ID of the source account. Submit either this or source_name"`
	SourceName          string   `json:"source_name,omitempty"`
	DestinationID       string   `json:"destination_id,omitempty" jsonschema:"description=ID of the destination account. Submit either this or destination_name"`
	DestinationName     string   `json:"destination_name,omitempty"`
	Reconciled          *bool    `json:"reconciled,omitempty"`
	PiggyBankID         *int     `json:"piggy_bank_id,omitempty"`
	PiggyBankName       string   `json:"piggy_bank_name,omitempty"`
	BillID              string   `json:"bill_id,omitempty"`
	BillName            string   `json:"bill_name,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	InternalReference   string   `json:"internal_reference,omitempty"`
	ExternalID          string   `json:"external_id,omitempty"`
	ExternalURL         string   `json:"external_url,omitempty"`
	BookDate            string   `json:"book_date,omitempty"`
	ProcessDate         string   `json:"process_date,omitempty"`
	DueDate             string   `json:"due_date,omitempty"`
	PaymentDate         string   `json:"payment_date,omitempty"`
	InvoiceDate         string   `json:"invoice_date,omitempty"`
}

type TransactionUpdate struct {
	ApplyRules   *bool                    `json:"apply_rules,omitempty"`
	FireWebhooks *bool                    `json:"fire_webhooks,omitempty"`
	GroupTitle   string                   `json:"group_title,omitempty"`
	Transactions []TransactionSplitUpdate `json:"transactions,omitempty"`
}

type TransactionSplitUpdate struct {
	TransactionJournalID string   `json:"transaction_journal_id,omitempty" jsonschema:"description=Journal ID of the split to update. Required when the transaction has more than one split"`
	Type                 string   `json:"type,omitempty" jsonschema:"enum=withdrawal|deposit|transfer|reconciliation|opening balance"`
	Date                 string   `json:"date,omitempty"`
	Amount               string   `json:"amount,omitempty"`
	Description          string   `json:"description,omitempty"`
	Order                *int     `json:"order,omitempty"`
	CurrencyID           string   `json:"currency_id,omitempty"`
	CurrencyCode         string   `json:"currency_code,omitempty"`
	ForeignAmount        string   `json:"foreign_amount,omitempty"`
	BudgetID             string   `json:"budget_id,omitempty"`
	BudgetName           string   `json:"budget_name,omitempty"`
	CategoryID           string   `json:"category_id,omitempty"`
	CategoryName         string   `json:"category_name,omitempty"`
	SourceID             string   `json:"source_id,omitempty"`
	SourceName           string   `json:"source_name,omitempty"`
	DestinationID        string   `json:"destination_id,omitempty"`
	DestinationName      string   `json:"destination_name,omitempty"`
	Reconciled           *bool    `json:"reconciled,omitempty"`
	BillID               string   `json:"bill_id,omitempty"`
	BillName             string   `json:"bill_name,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	InternalReference    string   `json:"internal_reference,omitempty"`
	ExternalURL          string   `json:"external_url,omitempty"`
}

type BudgetStore struct {
	Name                   string `json:"name" jsonschema:"required,description=Budget name"`
	Active                 *bool  `json:"active,omitempty"`
	Order                  *int   `json:"order,omitempty"`
	Notes                  string `json:"notes,omitempty"`
	FireWebhooks           *bool  `json:"fire_webhooks,omitempty"`
	AutoBudgetType         string `json:"auto_budget_type,omitempty" jsonschema:"enum=reset|rollover|none"`
	AutoBudgetCurrencyID   string `json:"auto_budget_currency_id,omitempty"`
	AutoBudgetCurrencyCode string `json:"auto_budget_currency_code,omitempty"`
	AutoBudgetAmount       string `json:"auto_budget_amount,omitempty"`
	AutoBudgetPeriod       string `json:"auto_budget_period,omitempty" jsonschema:"enum=daily|weekly|monthly|quarterly|half-year|yearly"`
}

type BudgetUpdate struct {
	Name                   string `json:"name" jsonschema:"required,description=Budget name"`
	Active                 *bool  `json:"active,omitempty"`
	Order                  *int   `json:"order,omitempty"`
	Notes                  string `json:"notes,omitempty"`
	FireWebhooks           *bool  `json:"fire_webhooks,omitempty"`
	AutoBudgetType         string `json:"auto_budget_type,omitempty" jsonschema:"enum=reset|rollover|none"`
	AutoBudgetCurrencyID   string `json:"auto_budget_currency_id,omitempty"`
	AutoBudgetCurrencyCode string `json:"auto_budget_currency_code,omitempty"`
	AutoBudgetAmount       string `json:"auto_budget_amount,omitempty"`
	AutoBudgetPeriod       string `json:"auto_budget_period,omitempty" jsonschema:"enum=daily|weekly|monthly|quarterly|half-year|yearly"`
}

type BudgetLimitStore struct {
	Start        string `json:"start" jsonschema:"required,format=date,description=Start date of the budget limit"`
	End          string `json:"end" jsonschema:"required,format=date,description=End date of the budget limit"`
	Amount       string `json:"amount" jsonschema:"required,description=Amount as a decimal string"`
	CurrencyID   string `json:"currency_id,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Notes        string `json:"notes,omitempty"`
	FireWebhooks *bool  `json:"fire_webhooks,omitempty"`
}

type BudgetLimit struct {
	Start        string `json:"start" jsonschema:"required,format=date"`
	End          string `json:"end" jsonschema:"required,format=date"`
	Amount       string `json:"amount" jsonschema:"required"`
	CurrencyID   string `json:"currency_id,omitempty"`
	CurrencyCode string `json:"currency_code,omitempty"`
	Notes        string `json:"notes,omitempty"`
	FireWebhooks *bool  `json:"fire_webhooks,omitempty"`
}

type Category struct {
	Name  string `json:"name" jsonschema:"required,description=Category name"`
	Notes string `json:"notes,omitempty"`
}

type CategoryUpdate struct {
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

type TagModelStore struct {
	Tag         string   `json:"tag" jsonschema:"required,description=The tag"`
	Date        string   `json:"date,omitempty" jsonschema:"format=date,description=The date to which the tag is applicable"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ZoomLevel   *int     `json:"zoom_level,omitempty"`
}

type TagModelUpdate struct {
	Tag         string   `json:"tag,omitempty"`
	Date        string   `json:"date,omitempty" jsonschema:"format=date"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	ZoomLevel   *int     `json:"zoom_level,omitempty"`
}

type RuleStore struct {
	Title          string             `json:"title" jsonschema:"required"`
	Description    string             `json:"description,omitempty"`
	RuleGroupID    string             `json:"rule_group_id" jsonschema:"required,description=ID of the rule group under which the rule must be stored"`
	RuleGroupTitle string             `json:"rule_group_title,omitempty"`
	Order          *int               `json:"order,omitempty"`
	Trigger        string             `json:"trigger" jsonschema:"required,enum=store-journal|update-journal,description=Which action triggers the rule"`
	Active         *bool              `json:"active,omitempty"`
	Strict         *bool              `json:"strict,omitempty" jsonschema:"description=If the rule is set to be strict, ALL triggers must hit for the rule to fire"`
	StopProcessing *bool              `json:"stop_processing,omitempty"`
	Triggers       []RuleTriggerStore `json:"triggers" jsonschema:"required"`
	Actions        []RuleActionStore  `json:"actions" jsonschema:"required"`
}

type RuleTriggerStore struct {
	Type           string `json:"type" jsonschema:"required,description=The type of thing this trigger responds to, e.g. description_contains"`
	Value          string `json:"value" jsonschema:"required,description=The accompanying value the trigger responds to"`
	Order          *int   `json:"order,omitempty"`
	Active         *bool  `json:"active,omitempty"`
	Prohibited     *bool  `json:"prohibited,omitempty"`
	StopProcessing *bool  `json:"stop_processing,omitempty"`
}

type RuleActionStore struct {
	Type           string `json:"type" jsonschema:"required,description=The type of thing this action will do, e.g. set_category"`
	Value          string `json:"value,omitempty"`
	Order          *int   `json:"order,omitempty"`
	Active         *bool  `json:"active,omitempty"`
	StopProcessing *bool  `json:"stop_processing,omitempty"`
}

type RuleUpdate struct {
	Title          string              `json:"title,omitempty"`
	Description    string              `json:"description,omitempty"`
	RuleGroupID    string              `json:"rule_group_id,omitempty"`
	Order          *int                `json:"order,omitempty"`
	Trigger        string              `json:"trigger,omitempty" jsonschema:"enum=store-journal|update-journal"`
	Active         *bool               `json:"active,omitempty"`
	Strict         *bool               `json:"strict,omitempty"`
	StopProcessing *bool               `json:"stop_processing,omitempty"`
	Triggers       []RuleTriggerUpdate `json:"triggers,omitempty"`
	Actions        []RuleActionUpdate  `json:"actions,omitempty"`
}

type RuleTriggerUpdate struct {
	Type           string `json:"type,omitempty"`
	Value          string `json:"value,omitempty"`
	Order          *int   `json:"order,omitempty"`
	Active         *bool  `json:"active,omitempty"`
	StopProcessing *bool  `json:"stop_processing,omitempty"`
}

type RuleActionUpdate struct {
	Type           string `json:"type,omitempty"`
	Value          string `json:"value,omitempty"`
	Order          *int   `json:"order,omitempty"`
	Active         *bool  `json:"active,omitempty"`
	StopProcessing *bool  `json:"stop_processing,omitempty"`
}

type RuleGroupStore struct {
	Title       string `json:"title" jsonschema:"required"`
	Description string `json:"description,omitempty"`
	Order       *int   `json:"order,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

type RuleGroupUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Order       *int   `json:"order,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

type BillStore struct {
	Name             string `json:"name" jsonschema:"required"`
	AmountMin        string `json:"amount_min" jsonschema:"required,description=Minimum amount as a decimal string"`
	AmountMax        string `json:"amount_max" jsonschema:"required,description=Maximum amount as a decimal string"`
	Date             string `json:"date" jsonschema:"required,description=Date of the first expected payment"`
	RepeatFreq       string `json:"repeat_freq" jsonschema:"required,enum=weekly|monthly|quarterly|half-year|yearly,description=How often the bill must be paid"`
	CurrencyID       string `json:"currency_id,omitempty"`
	CurrencyCode     string `json:"currency_code,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	ExtensionDate    string `json:"extension_date,omitempty"`
	Skip             *int   `json:"skip,omitempty" jsonschema:"description=How often the bill must be skipped. 1 means a bi-monthly bill"`
	Active           *bool  `json:"active,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ObjectGroupID    string `json:"object_group_id,omitempty"`
	ObjectGroupTitle string `json:"object_group_title,omitempty"`
}

type BillUpdate struct {
	Name             string `json:"name" jsonschema:"required"`
	AmountMin        string `json:"amount_min,omitempty"`
	AmountMax        string `json:"amount_max,omitempty"`
	Date             string `json:"date,omitempty"`
	RepeatFreq       string `json:"repeat_freq,omitempty" jsonschema:"enum=weekly|monthly|quarterly|half-year|yearly"`
	CurrencyID       string `json:"currency_id,omitempty"`
	CurrencyCode     string `json:"currency_code,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	ExtensionDate    string `json:"extension_date,omitempty"`
	Skip             *int   `json:"skip,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ObjectGroupID    string `json:"object_group_id,omitempty"`
	ObjectGroupTitle string `json:"object_group_title,omitempty"`
}

type PiggyBankStore struct {
	Name             string `json:"name" jsonschema:"required"`
	AccountID        string `json:"account_id" jsonschema:"required,description=The ID of the asset account holding the money"`
	TargetAmount     string `json:"target_amount" jsonschema:"required,description=Target amount as a decimal string"`
	CurrentAmount    string `json:"current_amount,omitempty"`
	StartDate        string `json:"start_date,omitempty" jsonschema:"format=date"`
	TargetDate       string `json:"target_date,omitempty" jsonschema:"format=date"`
	Order            *int   `json:"order,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ObjectGroupID    string `json:"object_group_id,omitempty"`
	ObjectGroupTitle string `json:"object_group_title,omitempty"`
}

type PiggyBankUpdate struct {
	Name             string `json:"name,omitempty"`
	AccountID        string `json:"account_id,omitempty"`
	TargetAmount     string `json:"target_amount,omitempty"`
	CurrentAmount    string `json:"current_amount,omitempty"`
	StartDate        string `json:"start_date,omitempty" jsonschema:"format=date"`
	TargetDate       string `json:"target_date,omitempty" jsonschema:"format=date"`
	Order            *int   `json:"order,omitempty"`
	Active           *bool  `json:"active,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ObjectGroupID    string `json:"object_group_id,omitempty"`
	ObjectGroupTitle string `json:"object_group_title,omitempty"`
}
