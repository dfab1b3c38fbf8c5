package util

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// LocalDate is a calendar date in the app's business timezone. Quiz sessions,
// attempts and limit rollovers are keyed by this date, not by UTC instants.
type LocalDate struct {
	time.Time
}

const dateLayout = "2006-01-02"

var saoPauloLocation *time.Location

func init() {
	var err error
	saoPauloLocation, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		saoPauloLocation = time.FixedZone("BRT", -3*60*60)
	}
}

// Today returns the current calendar date in the business timezone.
func Today() LocalDate {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar date in the business timezone.
func DateOf(t time.Time) LocalDate {
	local := t.In(saoPauloLocation)
	y, m, d := local.Date()
	return LocalDate{time.Date(y, m, d, 0, 0, 0, 0, saoPauloLocation)}
}

func ParseDate(s string) (LocalDate, error) {
	t, err := time.ParseInLocation(dateLayout, s, saoPauloLocation)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{t}, nil
}

func (ld LocalDate) String() string {
	if ld.IsZero() {
		return ""
	}
	return ld.In(saoPauloLocation).Format(dateLayout)
}

func (ld LocalDate) Equal(other LocalDate) bool {
	return ld.String() == other.String()
}

func (ld LocalDate) Before(other LocalDate) bool {
	return ld.String() < other.String()
}

func (ld *LocalDate) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	ld.Time = parsed.Time
	return nil
}

func (ld LocalDate) MarshalJSON() ([]byte, error) {
	if ld.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + ld.String() + `"`), nil
}

func (ld LocalDate) Value() (driver.Value, error) {
	if ld.IsZero() {
		return nil, nil
	}
	return ld.String(), nil
}

func (ld *LocalDate) Scan(value interface{}) error {
	if value == nil {
		ld.Time = time.Time{}
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		// Drivers return DATE columns as midnight in some fixed zone (pgx and
		// go-sqlite3 both use UTC). The calendar day is authoritative; converting
		// the instant into the business timezone would shift it back a day.
		y, m, d := v.Date()
		ld.Time = time.Date(y, m, d, 0, 0, 0, 0, saoPauloLocation)
		return nil
	case []byte:
		parsed, err := ParseDate(strings.TrimSpace(string(v)))
		if err != nil {
			return err
		}
		ld.Time = parsed.Time
		return nil
	case string:
		parsed, err := ParseDate(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		ld.Time = parsed.Time
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into LocalDate", value)
	}
}
