package seed

import (
	"time"

	"gorm.io/datatypes"

	"github.com/angelmondragon/opsboard-backend/pkg/enums"
)

type customerSeed struct {
	code, company, contact, email, phone, address, creditLimit string
}

type productSeed struct {
	sku, name, description, category, price string
}

type stockSeed struct {
	available, reorderPoint int
	location                string
}

type itemSeed struct {
	product  int
	quantity int64
	unit     string
}

type orderSeed struct {
	customer int
	number   string
	date     time.Time
	status   enums.OrderStatus
	items    []itemSeed
}

type integrationSeed struct {
	name, kind, endpoint string
	status               enums.IntegrationStatus
	syncStatus           enums.SyncStatus
	lastSync             time.Time
	configuration        datatypes.JSONMap
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var demoCustomers = []customerSeed{
	{"VOD001", "Vodacom Business Solutions", "Thabo Mthembu", "thabo.mthembu@vodacom.co.za", "+27 11 653 5000", "Vodacom Corporate Park, 082 Vodacom Boulevard, Midrand, 1685", "500000"},
	{"PNP001", "Pick n Pay Retailers", "Sarah van der Merwe", "sarah.vandermerwe@pnp.co.za", "+27 21 658 1000", "101 Rosmead Avenue, Kenilworth, Cape Town, 7708", "750000"},
	{"STE001", "Steinhoff Africa Retail", "David Mbeki", "david.mbeki@steinhoff.com", "+27 21 808 4400", "28 Sixth Street, Wynberg, Cape Town, 7800", "1000000"},
	{"TIG001", "Tiger Brands Limited", "Jennifer Adams", "jennifer.adams@tigerbrands.com", "+27 11 840 4000", "3 Tiger Crescent, Bryanston, Sandton, 2021", "600000"},
	{"BID001", "Bidvest Group Services", "Michael Johnson", "michael.johnson@bidvest.co.za", "+27 11 772 8700", "18 Crescent Drive, Melrose Arch, Johannesburg, 2196", "800000"},
}

var demoProducts = []productSeed{
	{"LAPTOP-001", "Dell Latitude 7420 Business Laptop", "14-inch laptop with Intel i7, 16GB RAM, 512GB SSD", "Electronics", "28500"},
	{"DESK-001", "Executive Office Desk - Mahogany", "Premium executive desk with built-in cable management", "Furniture", "12500"},
	{"PHONE-001", "Samsung Galaxy S24 Business Edition", "Latest smartphone with enterprise security features", "Electronics", "18900"},
	{"CHAIR-001", "Ergonomic Executive Chair", "Premium leather executive chair with lumbar support", "Furniture", "8750"},
	{"PRINTER-001", "HP LaserJet Pro M404dn", "High-speed monochrome laser printer for office use", "Electronics", "4200"},
	{"PROJECTOR-001", "Epson PowerLite 1795F Wireless", "Full HD wireless projector for conference rooms", "Electronics", "15600"},
	{"TABLE-001", "Conference Table - 12 Seater", "Solid wood conference table with built-in power outlets", "Furniture", "22000"},
	{"MONITOR-001", "LG UltraWide 34-inch Monitor", "34-inch curved ultrawide monitor with USB-C connectivity", "Electronics", "9800"},
	{"CABINET-001", "Filing Cabinet - 4 Drawer Steel", "Lockable steel filing cabinet with anti-tip mechanism", "Furniture", "3400"},
	{"TABLET-001", "iPad Pro 12.9-inch with Apple Pencil", "Professional tablet with M2 chip and accessories", "Electronics", "24500"},
}

// demoStock is indexed like demoProducts.
var demoStock = []stockSeed{
	{45, 10, "WARE-A"},
	{12, 3, "WARE-B"},
	{78, 15, "WARE-A"},
	{25, 5, "WARE-B"},
	{18, 4, "WARE-A"},
	{8, 2, "WARE-B"},
	{5, 1, "WARE-B"},
	{32, 8, "WARE-A"},
	{22, 5, "WARE-A"},
	{15, 3, "WARE-A"},
}

var demoOrders = []orderSeed{
	{0, "ORD-2024-008", day(2024, time.August, 15), enums.OrderStatusDelivered, []itemSeed{{0, 2, "28500"}, {1, 1, "12500"}, {5, 1, "15600"}}},
	{1, "ORD-2024-009", day(2024, time.September, 10), enums.OrderStatusDelivered, []itemSeed{{2, 3, "18900"}, {0, 2, "28500"}, {4, 1, "4200"}}},
	{2, "ORD-2024-010", day(2024, time.September, 25), enums.OrderStatusDelivered, []itemSeed{{6, 1, "22000"}, {3, 3, "8750"}, {2, 1, "18900"}}},
	{3, "ORD-2024-011", day(2024, time.October, 8), enums.OrderStatusDelivered, []itemSeed{{0, 3, "28500"}, {9, 2, "24500"}, {6, 1, "22000"}}},
	{4, "ORD-2024-012", day(2024, time.October, 22), enums.OrderStatusDelivered, []itemSeed{{1, 4, "12500"}, {3, 2, "8750"}, {8, 6, "3400"}}},
	{0, "ORD-2024-013", day(2024, time.November, 5), enums.OrderStatusDelivered, []itemSeed{{0, 4, "28500"}, {2, 2, "18900"}, {5, 3, "15600"}}},
	{1, "ORD-2024-014", day(2024, time.November, 18), enums.OrderStatusShipped, []itemSeed{{6, 2, "22000"}, {9, 1, "24500"}, {0, 1, "28500"}, {5, 1, "15600"}}},
	{2, "ORD-2024-015", day(2024, time.December, 10), enums.OrderStatusDelivered, []itemSeed{{0, 5, "28500"}, {1, 3, "12500"}, {2, 2, "18900"}, {3, 3, "8750"}}},
	{3, "ORD-2025-001", day(2025, time.January, 5), enums.OrderStatusProcessing, []itemSeed{{9, 3, "24500"}, {0, 2, "28500"}, {6, 1, "22000"}, {3, 3, "8750"}}},
	{4, "ORD-2025-002", day(2025, time.January, 10), enums.OrderStatusPending, []itemSeed{{0, 3, "28500"}, {2, 1, "18900"}, {1, 2, "12500"}, {4, 1, "4200"}}},
}

var demoIntegrations = []integrationSeed{
	{
		name: "SAP Business One", kind: "sap", endpoint: "https://api.sap.com/v1/businessone",
		status: enums.IntegrationStatusActive, syncStatus: enums.SyncStatusSuccess,
		lastSync: time.Date(2024, time.February, 10, 14, 30, 0, 0, time.UTC),
		configuration: datatypes.JSONMap{
			"apiKey":    "sap_prod_key_2024_za_001",
			"companyDb": "ACEOL_ZA",
			"serverUrl": "https://sap-b1.aceonline.co.za",
		},
	},
	{
		name: "Odoo ERP Cloud", kind: "odoo", endpoint: "https://mycompany.odoo.co.za/api/v2",
		status: enums.IntegrationStatusActive, syncStatus: enums.SyncStatusSuccess,
		lastSync: time.Date(2024, time.February, 10, 12, 15, 0, 0, time.UTC),
		configuration: datatypes.JSONMap{
			"apiKey":   "odoo_cloud_key_za_prod_001",
			"database": "aceol_prod",
			"username": "integration_user",
		},
	},
	{
		name: "Kingdee Cloud", kind: "kingdee", endpoint: "https://api.kingdee.com/v3/za",
		status: enums.IntegrationStatusInactive, syncStatus: enums.SyncStatusError,
		lastSync: time.Date(2024, time.February, 9, 16, 45, 0, 0, time.UTC),
		configuration: datatypes.JSONMap{
			"apiKey":    "kingdee_za_enterprise_key_001",
			"accountId": "ACE_ZA_001",
			"region":    "za-central",
		},
	},
	{
		name: "Microsoft Dynamics 365", kind: "dynamics365", endpoint: "https://api.dynamics.microsoft.com/v1",
		status: enums.IntegrationStatusActive, syncStatus: enums.SyncStatusSuccess,
		lastSync: time.Date(2024, time.February, 10, 13, 20, 0, 0, time.UTC),
		configuration: datatypes.JSONMap{
			"apiKey":          "dynamics_365_za_prod_key_001",
			"organizationUrl": "https://aceonline.crm4.dynamics.com",
			"clientId":        "d365-ace-client-001",
		},
	},
}
