package fallback

import (
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/shopspring/decimal"
)

// seedBase anchors the fixed snapshot timestamps.
var seedBase = time.Date(2025, time.January, 15, 9, 0, 0, 0, time.UTC)

func stamp(day int) models.Timestamps {
	t := seedBase.AddDate(0, 0, day)
	return models.Timestamps{CreatedAt: t, UpdatedAt: t}
}

func timePtr(day int) *time.Time {
	t := seedBase.AddDate(0, 0, day)
	return &t
}

// SeedCategories returns the fixed category snapshot: eight categories,
// seven of them active, newest first.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: 8, Name: "Automotive", Description: "Car care and accessories", Icon: "car", Status: models.StatusInactive, ProductCount: 0, Timestamps: stamp(7)},
		{ID: 7, Name: "Toys & Hobbies", Description: "Games, puzzles and collectibles", Icon: "toy", Status: models.StatusActive, ProductCount: 18, Timestamps: stamp(6)},
		{ID: 6, Name: "Beauty", Description: "Skincare, makeup and fragrance", Icon: "sparkles", Status: models.StatusActive, ProductCount: 40, Timestamps: stamp(5)},
		{ID: 5, Name: "Sports", Description: "Outdoor and fitness equipment", Icon: "ball", Status: models.StatusActive, ProductCount: 25, Timestamps: stamp(4)},
		{ID: 4, Name: "Books", Description: "Printed books and stationery", Icon: "book", Status: models.StatusActive, ProductCount: 33, Timestamps: stamp(3)},
		{ID: 3, Name: "Home & Living", Description: "Furniture and kitchen supplies", Icon: "home", Status: models.StatusActive, ProductCount: 60, Timestamps: stamp(2)},
		{ID: 2, Name: "Fashion", Description: "Clothing, shoes and bags", Icon: "shirt", Status: models.StatusActive, ProductCount: 120, Timestamps: stamp(1)},
		{ID: 1, Name: "Electronics", Description: "Phones, laptops and gadgets", Icon: "laptop", Status: models.StatusActive, ProductCount: 45, Timestamps: stamp(0)},
	}
}

func SeedFAQs() []models.FAQ {
	return []models.FAQ{
		{ID: 6, Question: "Can I change my store name?", Answer: "Store names can be changed once every 30 days from the seller dashboard.", Category: "seller", Status: models.StatusInactive, DisplayOrder: 6, Timestamps: stamp(5)},
		{ID: 5, Question: "How long does store verification take?", Answer: "Verification usually completes within two business days.", Category: "seller", Status: models.StatusActive, DisplayOrder: 5, Timestamps: stamp(4)},
		{ID: 4, Question: "How do I report a product?", Answer: "Open the product page and choose Report under the seller information.", Category: "general", Status: models.StatusActive, DisplayOrder: 4, Timestamps: stamp(3)},
		{ID: 3, Question: "What if my payment is rejected?", Answer: "Upload a clearer transfer receipt or contact support with your order number.", Category: "payment", Status: models.StatusActive, DisplayOrder: 3, Timestamps: stamp(2)},
		{ID: 2, Question: "Which payment methods are accepted?", Answer: "Bank transfer and e-wallet payments to the active marketplace account.", Category: "payment", Status: models.StatusActive, DisplayOrder: 2, Timestamps: stamp(1)},
		{ID: 1, Question: "How do I create an account?", Answer: "Click Register, fill in your details and confirm your email address.", Category: "general", Status: models.StatusActive, DisplayOrder: 1, Timestamps: stamp(0)},
	}
}

func SeedReports() []models.Report {
	return []models.Report{
		{ID: 6, ReporterName: "Dewi Lestari", ReportType: "user", ReportedID: 31, ReportedName: "spam_buyer_31", Reason: "Harassment", Description: "Repeated abusive messages after a cancelled order.", Status: models.StatusPending, Timestamps: stamp(9)},
		{ID: 5, ReporterName: "Budi Santoso", ReportType: "product", ReportedID: 412, ReportedName: "Wireless Earbuds X2", Reason: "Counterfeit", Description: "Packaging differs from the official brand.", Status: models.StatusInvestigating, AdminNotes: "Asked the seller for an invoice.", Timestamps: stamp(8)},
		{ID: 4, ReporterName: "Siti Rahma", ReportType: "store", ReportedID: 4, ReportedName: "Gadget Corner", Reason: "Item not delivered", Description: "Order paid two weeks ago, no tracking number.", Status: models.StatusResolved, AdminNotes: "Refund issued.", ResolvedAt: timePtr(7), Timestamps: stamp(6)},
		{ID: 3, ReporterName: "Andi Wijaya", ReportType: "product", ReportedID: 97, ReportedName: "Herbal Slimming Tea", Reason: "Prohibited item", Description: "Product makes unverified medical claims.", Status: models.StatusPending, Timestamps: stamp(4)},
		{ID: 2, ReporterName: "Rina Kusuma", ReportType: "store", ReportedID: 2, ReportedName: "Batik Nusantara", Reason: "Misleading description", Description: "Colour in photos does not match the product.", Status: models.StatusRejected, AdminNotes: "Photos match the listing.", ResolvedAt: timePtr(3), Timestamps: stamp(2)},
		{ID: 1, ReporterName: "Agus Pratama", ReportType: "product", ReportedID: 15, ReportedName: "Leather Wallet", Reason: "Wrong item", Description: "Received a different colour.", Status: models.StatusPending, Timestamps: stamp(0)},
	}
}

// SeedBankAccounts returns two accounts; account 1 is the active one.
func SeedBankAccounts() []models.BankAccount {
	return []models.BankAccount{
		{ID: 2, BankName: "Mandiri", AccountNumber: "1370012345678", AccountName: "PT Pasar Raya Digital", AccountType: models.AccountTypeBank, IsActive: false, Timestamps: stamp(1)},
		{ID: 1, BankName: "BCA", AccountNumber: "8730456789", AccountName: "PT Pasar Raya Digital", AccountType: models.AccountTypeBank, IsActive: true, Timestamps: stamp(0)},
	}
}

func SeedStores() []models.Store {
	return []models.Store{
		{ID: 5, StoreName: "Kopi Kenangan Lokal", OwnerName: "Yusuf Hakim", Email: "yusuf@kopilokal.id", Phone: "081234500005", Address: "Bandung", Status: models.StatusPending, Timestamps: stamp(8)},
		{ID: 4, StoreName: "Gadget Corner", OwnerName: "Hendra Gunawan", Email: "hendra@gadgetcorner.id", Phone: "081234500004", Address: "Jakarta", Status: models.StatusSuspended, VerificationNotes: "Suspended after delivery complaints.", ProductCount: 54, Timestamps: stamp(5)},
		{ID: 3, StoreName: "Rumah Craft", OwnerName: "Lina Marlina", Email: "lina@rumahcraft.id", Phone: "081234500003", Address: "Yogyakarta", Status: models.StatusRejected, VerificationNotes: "ID card photo unreadable.", Timestamps: stamp(3)},
		{ID: 2, StoreName: "Batik Nusantara", OwnerName: "Made Wirawan", Email: "made@batiknusantara.id", Phone: "081234500002", Address: "Solo", Status: models.StatusApproved, ProductCount: 87, Timestamps: stamp(1)},
		{ID: 1, StoreName: "Toko Buku Cerdas", OwnerName: "Fitri Handayani", Email: "fitri@bukucerdas.id", Phone: "081234500001", Address: "Surabaya", Status: models.StatusApproved, ProductCount: 33, Timestamps: stamp(0)},
	}
}

func SeedPayments() []models.PaymentOrder {
	return []models.PaymentOrder{
		{ID: 5, OrderNumber: "ORD-20250124-005", BuyerName: "Dewi Lestari", StoreName: "Kopi Kenangan Lokal", Amount: decimal.NewFromInt(89000), PaymentMethod: models.AccountTypeEwallet, PaymentProof: "proofs/ord-005.jpg", Status: models.StatusPending, Timestamps: stamp(9)},
		{ID: 4, OrderNumber: "ORD-20250122-004", BuyerName: "Budi Santoso", StoreName: "Gadget Corner", Amount: decimal.NewFromInt(1250000), PaymentMethod: models.AccountTypeBank, PaymentProof: "proofs/ord-004.jpg", Status: models.StatusPending, Timestamps: stamp(7)},
		{ID: 3, OrderNumber: "ORD-20250120-003", BuyerName: "Siti Rahma", StoreName: "Batik Nusantara", Amount: decimal.RequireFromString("450000.50"), PaymentMethod: models.AccountTypeBank, PaymentProof: "proofs/ord-003.jpg", Status: models.StatusVerified, VerifiedAt: timePtr(6), Timestamps: stamp(5)},
		{ID: 2, OrderNumber: "ORD-20250118-002", BuyerName: "Agus Pratama", StoreName: "Toko Buku Cerdas", Amount: decimal.NewFromInt(175000), PaymentMethod: models.AccountTypeBank, PaymentProof: "proofs/ord-002.jpg", Status: models.StatusRejected, Notes: "Transfer amount does not match the order total.", Timestamps: stamp(3)},
		{ID: 1, OrderNumber: "ORD-20250116-001", BuyerName: "Rina Kusuma", StoreName: "Batik Nusantara", Amount: decimal.NewFromInt(320000), PaymentMethod: models.AccountTypeEwallet, PaymentProof: "proofs/ord-001.jpg", Status: models.StatusVerified, VerifiedAt: timePtr(2), Timestamps: stamp(1)},
	}
}
