package account

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Account é um destino de pagamento externo (chave UPI). A existência real
// da chave não é verificada pelo motor.
type Account struct {
	Id        ulid.ULID `json:"id"`
	UpiId     string    `json:"upiId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
