package reporting

import "errors"

var (
	ErrLoadSalesTable = errors.New("error loading sales table")
	ErrExportSales    = errors.New("error exporting sales")
)
