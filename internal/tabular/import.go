package tabular

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Yash-Ghyar/Secure-E-Commerce/models"
)

const timeLayout = "2006-01-02 15:04:05"

// Workbook filenames inside the data directory.
const (
	UsersFile    = "users.xlsx"
	ProductsFile = "products.xlsx"
	OrdersFile   = "orders.xlsx"
)

// ImportWorkbooks seeds the database from the legacy spreadsheet files,
// applying the same tolerances the old store had: missing workbooks are
// fine, malformed numerics fall back to zero values, and the order table
// is scrubbed and renumbered before insert.
func ImportWorkbooks(db *gorm.DB, dataDir string, zlog *zap.SugaredLogger) error {
	if zlog == nil {
		zlog = zap.NewNop().Sugar()
	}

	users := Load(filepath.Join(dataDir, UsersFile), UserColumns, zlog)
	for _, row := range users {
		if row["username"] == "" {
			continue
		}
		user := models.User{
			Username:  row["username"],
			Password:  row["password"],
			Role:      defaultString(row["role"], models.RoleCustomer),
			Active:    parseBool(row["active"], true),
			CreatedAt: parseTime(row["created_at"]),
		}
		if err := db.Create(&user).Error; err != nil {
			zlog.Warnw("skipping user row", "username", row["username"], "error", err)
		}
	}

	products := Load(filepath.Join(dataDir, ProductsFile), ProductColumns, zlog)
	for _, row := range products {
		if row["name"] == "" {
			continue
		}
		product := models.Product{
			ID:          parseUint(row["id"]),
			Name:        row["name"],
			Description: row["description"],
			Price:       parseDecimal(row["price"]),
			Stock:       parseInt(row["stock"]),
			Image:       row["image"],
			Seller:      row["seller"],
		}
		if err := db.Create(&product).Error; err != nil {
			zlog.Warnw("skipping product row", "id", row["id"], "error", err)
		}
	}

	orders := NormalizeOrders(Load(filepath.Join(dataDir, OrdersFile), OrderColumns, zlog))
	for _, row := range orders {
		order := models.Order{
			ID:          parseUint(row["id"]),
			ProductID:   parseUint(row["product_id"]),
			ProductName: row["product_name"],
			Price:       parseDecimal(row["price"]),
			Customer:    row["customer"],
			Seller:      row["seller"],
			Timestamp:   parseTime(row["timestamp"]),
			Status:      defaultString(row["status"], models.OrderStatusPending),
		}
		if err := db.Create(&order).Error; err != nil {
			zlog.Warnw("skipping order row", "id", row["id"], "error", err)
		}
	}

	zlog.Infow("legacy workbooks imported",
		"users", len(users), "products", len(products), "orders", len(orders))
	return nil
}

// ExportWorkbooks writes the current database state back out as the three
// canonical workbooks.
func ExportWorkbooks(db *gorm.DB, dataDir string) error {
	var users []models.User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	userRows := make([]Row, 0, len(users))
	for _, u := range users {
		userRows = append(userRows, Row{
			"username":   u.Username,
			"password":   u.Password,
			"role":       u.Role,
			"active":     formatBool(u.Active),
			"created_at": u.CreatedAt.Format(timeLayout),
		})
	}
	if err := Save(filepath.Join(dataDir, UsersFile), UserColumns, userRows); err != nil {
		return err
	}

	var products []models.Product
	if err := db.Order("id asc").Find(&products).Error; err != nil {
		return fmt.Errorf("load products: %w", err)
	}
	productRows := make([]Row, 0, len(products))
	for _, p := range products {
		productRows = append(productRows, Row{
			"id":          strconv.FormatUint(uint64(p.ID), 10),
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price.String(),
			"stock":       strconv.Itoa(p.Stock),
			"image":       p.Image,
			"seller":      p.Seller,
		})
	}
	if err := Save(filepath.Join(dataDir, ProductsFile), ProductColumns, productRows); err != nil {
		return err
	}

	var orders []models.Order
	if err := db.Order("id asc").Find(&orders).Error; err != nil {
		return fmt.Errorf("load orders: %w", err)
	}
	orderRows := make([]Row, 0, len(orders))
	for _, o := range orders {
		orderRows = append(orderRows, Row{
			"id":           strconv.FormatUint(uint64(o.ID), 10),
			"product_id":   strconv.FormatUint(uint64(o.ProductID), 10),
			"product_name": o.ProductName,
			"price":        o.Price.String(),
			"customer":     o.Customer,
			"seller":       o.Seller,
			"timestamp":    o.Timestamp.Format(timeLayout),
			"status":       o.Status,
		})
	}
	return Save(filepath.Join(dataDir, OrdersFile), OrderColumns, orderRows)
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// parseBool tolerates pandas-style "True"/"False" alongside the usual
// forms; anything unrecognized takes the fallback.
func parseBool(v string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

func formatBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func parseInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func parseUint(v string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

func parseDecimal(v string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseTime accepts the legacy timestamp layout; anything unparsable
// becomes the zero time, which sorts last in descending listings.
func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}
