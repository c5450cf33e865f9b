package cmd

type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	TaxRate        string
	DiscountMinor  string
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
}
