package roster

// Row is one parsed line of a roster or employee spreadsheet. Optional
// columns are nil when absent or blank.
type Row struct {
	Line       int
	EmployeeID string
	FullName   string
	Department *string
	Email      *string
	Phone      *string
}

// ImportResult counts what an import run wrote.
type ImportResult struct {
	Rows    int `json:"rows"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
