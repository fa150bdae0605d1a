package ledger

// DefaultCategory is used when a transaction is saved without a category.
const DefaultCategory = "others"

// Categories is the fixed suggestion set offered for transactions and
// subscriptions. Category stays a free-form tag; this list is advisory.
var Categories = []string{
	"food",
	"transport",
	"entertainment",
	"bills",
	"shopping",
	"health",
	"education",
	"travel",
	"pets",
	"gym",
	"gifts",
	"subscriptions",
	"salary",
	"others",
}

// ReceiptCategories are the categories the receipt extractor may suggest.
var ReceiptCategories = []string{
	"food",
	"transport",
	"entertainment",
	"bills",
	"shopping",
	"health",
	"others",
}

func categoryOrDefault(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return category
}
