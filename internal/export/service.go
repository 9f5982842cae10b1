package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/internal/entity"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
)

// Service is a tiny façade over the order repository that produces XLSX
// bytes for production reports.
type Service struct {
	orders repository.OrderRepository
	logger *slog.Logger

	// BufferPct is a safety margin added to every bake quantity, in
	// percent. Zero means report raw order counts.
	BufferPct int
}

func NewService(orders repository.OrderRepository, bufferPct int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{orders: orders, logger: logger, BufferPct: bufferPct}
}

// productionLine is one row of the bake plan: a cake flavour/size and how
// many of it the kitchen needs to produce.
type productionLine struct {
	Title   string
	Variant string
	Ordered int
	ToBake  int
	Orders  int
	Revenue float64
}

// ProductionReportXLSX returns an XLSX workbook for the given shop and date
// window. Cakes are aggregated by title and variant; secondary items are
// listed on their own sheet since they are bought in, not baked.
// If only from is provided -> from..today (inclusive).
// If neither is provided   -> all orders for the shop.
func (s *Service) ProductionReportXLSX(ctx context.Context, shop string, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	orders, err := s.orders.ListByShop(ctx, shop, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	lines, extras := s.aggregate(orders)

	f := excelize.NewFile()
	const sheet = "Production"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Cake", "Variant", "Ordered", "To Bake", "Orders", "Revenue"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, l := range lines {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, l.Title)
		write(2, l.Variant)
		write(3, l.Ordered)
		write(4, l.ToBake)
		write(5, l.Orders)
		write(6, l.Revenue)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 32)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "E", 10)
	_ = f.SetColWidth(sheet, "F", "F", 14)

	if len(extras) > 0 {
		const extrasSheet = "Extras"
		if _, err := f.NewSheet(extrasSheet); err != nil {
			return nil, err
		}
		for i, h := range []string{"Item", "Quantity"} {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(extrasSheet, cell, h)
		}
		erow := 2
		for _, e := range extras {
			cell, _ := excelize.CoordinatesToCellName(1, erow)
			_ = f.SetCellValue(extrasSheet, cell, e.Title)
			cell, _ = excelize.CoordinatesToCellName(2, erow)
			_ = f.SetCellValue(extrasSheet, cell, e.Ordered)
			erow++
		}
		_ = f.SetColWidth(extrasSheet, "A", "A", 32)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	totalCakes := 0
	for _, l := range lines {
		totalCakes += l.ToBake
	}
	s.logger.Info("export.production.ok",
		"shop", shop,
		"orders", len(orders),
		"cake_lines", len(lines),
		"total_cakes", totalCakes,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// aggregate rolls order items up by (title, variant) for cakes and by title
// for secondary items, applying the safety buffer to bake quantities.
func (s *Service) aggregate(orders []*entity.SplitOrder) (cakes, extras []productionLine) {
	type key struct{ title, variant string }
	cakeAgg := map[key]*productionLine{}
	extraAgg := map[string]*productionLine{}

	for _, o := range orders {
		for _, it := range o.Items {
			if it.Kind == constants.ItemKindPrimary {
				k := key{it.Title, it.Variant}
				l, ok := cakeAgg[k]
				if !ok {
					l = &productionLine{Title: it.Title, Variant: it.Variant}
					cakeAgg[k] = l
				}
				l.Ordered += it.Quantity
				l.Orders++
				l.Revenue += it.LineTotal().InexactFloat64()
			} else {
				l, ok := extraAgg[it.Title]
				if !ok {
					l = &productionLine{Title: it.Title}
					extraAgg[it.Title] = l
				}
				l.Ordered += it.Quantity
			}
		}
	}

	for _, l := range cakeAgg {
		l.ToBake = l.Ordered
		if s.BufferPct > 0 {
			l.ToBake += l.Ordered * s.BufferPct / 100
		}
		cakes = append(cakes, *l)
	}
	sort.Slice(cakes, func(i, j int) bool {
		if cakes[i].Ordered != cakes[j].Ordered {
			return cakes[i].Ordered > cakes[j].Ordered
		}
		if cakes[i].Title != cakes[j].Title {
			return cakes[i].Title < cakes[j].Title
		}
		return cakes[i].Variant < cakes[j].Variant
	})

	for _, l := range extraAgg {
		extras = append(extras, *l)
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i].Title < extras[j].Title })

	return cakes, extras
}
