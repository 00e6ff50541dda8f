package styles

import (
	"fmt"
	"strings"

	"github.com/beanthere/beanthere/internal/coffee/domain"
)

// Stock status labels shown in the inventory table.
const (
	StatusGood     = "GOOD"
	StatusLowStock = "LOW STOCK"
)

// StockStatus returns the status label for a stock level against the
// low-stock threshold.
func StockStatus(gramsInStock, lowStockGrams float64) string {
	if gramsInStock > lowStockGrams {
		return StatusGood
	}
	return StatusLowStock
}

// RenderInventory renders the bean inventory as an aligned table with
// color-coded stock status.
func RenderInventory(beans []*domain.Bean, lowStockGrams float64) string {
	var b strings.Builder
	b.WriteString(Header.Render(fmt.Sprintf("%-20s %-15s %10s  %s", "Bean", "Origin", "Stock(g)", "Status")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 60))
	b.WriteString("\n")
	for _, bean := range beans {
		status := StockStatus(bean.GramsInStock, lowStockGrams)
		style := Good
		if status == StatusLowStock {
			style = Bad
		}
		b.WriteString(fmt.Sprintf("%-20s %-15s %10.0f  %s\n",
			bean.Name, bean.Origin, bean.GramsInStock, style.Render(status)))
	}
	return b.String()
}

// RenderDailyReport renders the daily report block. currency is the symbol
// prefixed to money amounts.
func RenderDailyReport(r *domain.DailyReport, currency string) string {
	var b strings.Builder
	b.WriteString(Title.Render("BeanThere Daily Report"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Drinks served : %d\n", r.DrinkCount))
	b.WriteString(fmt.Sprintf("Revenue       : %s\n", Good.Render(fmt.Sprintf("%s%.2f", currency, r.Revenue))))
	b.WriteString(fmt.Sprintf("Bean cost     : %s\n", Bad.Render(fmt.Sprintf("%s%.2f", currency, r.Cost))))
	b.WriteString(fmt.Sprintf("Profit        : %s\n", Profit.Render(fmt.Sprintf("%s%.2f", currency, r.Profit))))
	b.WriteString(fmt.Sprintf("Vibe check    : %.2f/5 → %s\n", r.AvgRating, VibeStyle(r.Vibe).Render(r.Vibe)))
	b.WriteString(fmt.Sprintf("Top bean      : %s (%d drinks)\n", BeanName.Render(r.TopBean), r.TopBeanDrinks))
	return b.String()
}
