package shell

// barWidth is the number of cells in a consumption bar.
const barWidth = 25

// consumptionBar renders the remaining stock of a beverage as a fixed
// width gauge relative to its last restock level. A '<' marks the cell
// the level currently sits in, '=' fills the cells below it.
func consumptionBar(stock, lastRestock int) string {
	reference := barWidth * float64(stock) / float64(lastRestock)
	cells := make([]byte, 0, barWidth)
	for i := 1; i <= barWidth; i++ {
		switch {
		case float64(i) < reference:
			if float64(i+1) < reference || i == barWidth-1 {
				cells = append(cells, '=')
			} else {
				cells = append(cells, '<')
			}
		case reference == barWidth:
			cells = append(cells, '=')
		default:
			cells = append(cells, ' ')
		}
	}
	return string(cells)
}
