// Package extract implements the extract stage of the accounts-receivable
// ETL: validating the ARM_YYYY-MM-DD.xlsx file name, parsing the embedded
// reporting date, and reading the fixed data region of the spreadsheet.
package extract
