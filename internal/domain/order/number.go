package order

import (
	"fmt"
	"time"
)

// Prefijo de los números de orden de la tienda.
const NumberPrefix = "CL"

// FormatNumber genera el número de orden CL<YY><MM><DD><NNN> a partir de la
// fecha y el consecutivo diario (1 -> 001). El consecutivo debe venir de una
// secuencia atómica por día; contar filas existentes y formatear es una
// condición de carrera.
func FormatNumber(t time.Time, seq int) string {
	return fmt.Sprintf("%s%02d%02d%02d%03d", NumberPrefix, t.Year()%100, int(t.Month()), t.Day(), seq)
}
