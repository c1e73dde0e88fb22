package report

import "context"

type ReportService interface {
	MonthlyCompanyReport(ctx context.Context, req *MonthlyReportRequest) (*MonthlyCompanyReport, error)
	EmployeeDetailReport(ctx context.Context, req *EmployeeReportRequest) (*EmployeeDetailReport, error)
	RangeSummary(ctx context.Context, req *RangeSummaryRequest) (*RangeSummary, error)

	// MonthlyExcel renders the monthly company report as an XLSX workbook and
	// returns its bytes along with a suggested file name.
	MonthlyExcel(ctx context.Context, req *MonthlyReportRequest) ([]byte, string, error)
}
