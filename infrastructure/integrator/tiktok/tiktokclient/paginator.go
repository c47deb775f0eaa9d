package tiktokclient

import (
	"github.com/sirupsen/logrus"
)

// PageOptions controla uma sessão de paginação por cursor.
//
// MaxPages <= 0 significa sem teto de páginas: a sessão só termina quando o
// servidor sinalizar has_more=false ou devolver uma página vazia. O servidor
// não garante que isso aconteça, então o risco de um loop longo é do
// chamador; os pontos de entrada da aplicação sempre passam um teto finito.
type PageOptions struct {
	MaxPages int

	// Tolerant faz uma falha de requisição no meio da paginação encerrar o
	// loop devolvendo as páginas já acumuladas, em vez de falhar a chamada.
	Tolerant bool
}

// PageStats resume a sessão de paginação para o chamador.
type PageStats struct {
	Pages     int
	Truncated bool
}

// pageFunc busca uma página. Recebe o cursor da página anterior (vazio na
// primeira requisição) e devolve o número de itens da página, a flag
// has_more do servidor e o próximo cursor. A acumulação dos itens é
// responsabilidade do closure do chamador, uma página por vez.
type pageFunc func(searchID string) (count int, hasMore bool, nextID string, err error)

// paginate executa o loop de paginação por cursor: Start -> Fetching e, a
// cada página, HasMore (segue com o search_id devolvido) ou Exhausted (página
// vazia, has_more=false ou teto de páginas). Falha de requisição propaga o
// erro, ou vira Exhausted no modo tolerante.
//
// A terminação é garantida porque cada iteração incrementa o contador de
// páginas em direção ao teto, exceto quando o chamador pediu MaxPages
// ilimitado.
func paginate(opts PageOptions, fetch pageFunc) (*PageStats, error) {
	stats := &PageStats{}
	searchID := ""

	for {
		count, hasMore, nextID, err := fetch(searchID)
		if err != nil {
			if opts.Tolerant && stats.Pages > 0 {
				logrus.WithError(err).WithField("pages", stats.Pages).
					Warn("Falha no meio da paginação, retornando resultados parciais")
				stats.Truncated = true
				return stats, nil
			}
			return stats, err
		}

		stats.Pages++

		if count == 0 || !hasMore {
			return stats, nil
		}

		if opts.MaxPages > 0 && stats.Pages >= opts.MaxPages {
			return stats, nil
		}

		searchID = nextID
	}
}
