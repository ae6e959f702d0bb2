package metrics

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

// RegisterPool exposes pool statistics as gauges. Gauges are read on scrape.
func RegisterPool(reg prometheus.Registerer, pool *pgxpool.Pool) error {
	gauges := map[string]func() float64{
		"db_pool_total_conns":    func() float64 { return float64(pool.Stat().TotalConns()) },
		"db_pool_acquired_conns": func() float64 { return float64(pool.Stat().AcquiredConns()) },
		"db_pool_idle_conns":     func() float64 { return float64(pool.Stat().IdleConns()) },
		"db_pool_max_conns":      func() float64 { return float64(pool.Stat().MaxConns()) },
	}

	for name, fn := range gauges {
		g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      name,
			Help:      "Connection pool statistic " + name,
		}, fn)
		if err := reg.Register(g); err != nil {
			return err
		}
	}
	return nil
}
