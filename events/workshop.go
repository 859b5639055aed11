package events

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

const CurrencyINR = "INR"

// Workshop is the single paid event that attendees register for. The fee is
// fixed configuration, never derived from user input.
type Workshop struct {
	Name      string
	StartTime time.Time
	Venue     Location
	BaseFee   *money.Money
	// TaxBasisPoints is the tax rate in hundredths of a percent (1800 = 18%).
	TaxBasisPoints int64
}

type Location struct {
	Name       string
	LocAddress Address
}

type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

func (l Location) String() string {
	parts := []string{}
	for _, p := range []string{l.Name, l.LocAddress.Street, l.LocAddress.City, l.LocAddress.State, l.LocAddress.PostalCode, l.LocAddress.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// ZeroDefectSummit is the workshop this service sells seats for.
var ZeroDefectSummit = Workshop{
	Name:      "Zero Defect Summit",
	StartTime: time.Date(2026, time.January, 23, 9, 0, 0, 0, time.FixedZone("IST", 5*60*60+30*60)),
	Venue: Location{
		Name: "Hotel Sahara Star",
		LocAddress: Address{
			Street:     "Opp. Domestic Airport, Vile Parle East",
			City:       "Mumbai",
			State:      "Maharashtra",
			PostalCode: "400099",
			Country:    "India",
		},
	},
	BaseFee:        money.New(35000_00, CurrencyINR),
	TaxBasisPoints: 1800,
}

// Tax is the tax on the base fee in minor units, rounded half up.
func (w Workshop) Tax() *money.Money {
	taxMinor := (w.BaseFee.Amount()*w.TaxBasisPoints + 5000) / 10000
	return money.New(taxMinor, w.BaseFee.Currency().Code)
}

// TotalFee is the tax inclusive amount the gateway is asked to collect.
func (w Workshop) TotalFee() (*money.Money, error) {
	total, err := w.BaseFee.Add(w.Tax())
	if err != nil {
		return nil, fmt.Errorf("failed to add tax to base fee: %w", err)
	}

	return total, nil
}
