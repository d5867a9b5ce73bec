package models

// Static catalogs consumed by forms and validated on input.

var Currencies = []string{"ARS", "USD", "EUR", "BTC", "ETH", "USDT"}

var AmountTypes = []string{"FIXED", "ESTIMATE", "VARIABLE"}

var InstitutionKinds = []string{
	"BANK_PHYSICAL",
	"BANK_VIRTUAL",
	"WALLET",
	"BROKER",
	"CRYPTO_EXCHANGE",
	"CASH",
}

func IsValidCurrency(currency string) bool {
	for _, c := range Currencies {
		if c == currency {
			return true
		}
	}
	return false
}

func IsValidInstitutionKind(kind string) bool {
	for _, k := range InstitutionKinds {
		if k == kind {
			return true
		}
	}
	return false
}
