package receipt

import (
	"fmt"
	"time"

	"github.com/gakiokevin/myhotel/shared/constant"
)

// Number builds a human-readable, date-stamped receipt number for a payment
// event, e.g. RCT-20240115-42. Deterministic for a fixed id and date; ids are
// monotonically increasing primary keys, so two receipts issued on the same
// day never collide.
func Number(id int64, date time.Time) string {
	return fmt.Sprintf("RCT-%s-%d", date.Format(constant.ReceiptDateFormat), id)
}
