// Package load implements the load stage of the accounts-receivable ETL:
// serializing summary tables to ';'-delimited files named by report type
// and reporting date under the export directory.
package load
