package pdf

import "century-cleaning/go_backend/internal/domain/quotation"

type Generator interface {
	Generate(p *quotation.Parsed) ([]byte, error)
}
