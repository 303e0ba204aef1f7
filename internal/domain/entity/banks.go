package entity

// BankDirectory is the process-wide set of settlement-eligible bank codes.
// It is built once at startup from configuration and injected into
// settlement validation, so tests can run with alternate whitelists.
type BankDirectory struct {
	codes map[string]struct{}
}

// defaultBankCodes lists the Korean bank codes accepted for payouts.
var defaultBankCodes = []string{
	"004", // KB Kookmin
	"088", // Shinhan
	"020", // Woori
	"081", // Hana
	"003", // IBK
	"011", // NH Nonghyup
	"023", // SC First
	"027", // Citibank Korea
	"039", // Kyongnam
	"034", // Gwangju
	"031", // Daegu
	"032", // Busan
	"037", // Jeonbuk
	"035", // Jeju
	"007", // Suhyup
	"045", // MG Community Credit
	"048", // Shinhyup
	"064", // Forestry Cooperative
	"071", // Korea Post
	"089", // K Bank
	"090", // KakaoBank
	"092", // Toss Bank
}

// NewBankDirectory builds a directory from the given codes; with no codes it
// falls back to the default whitelist.
func NewBankDirectory(codes ...string) BankDirectory {
	if len(codes) == 0 {
		codes = defaultBankCodes
	}

	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}

	return BankDirectory{codes: set}
}

// Contains reports whether code is a recognized bank code.
func (d BankDirectory) Contains(code string) bool {
	_, ok := d.codes[code]

	return ok
}

// Len returns the number of recognized bank codes.
func (d BankDirectory) Len() int {
	return len(d.codes)
}
