package models

// Keys of the four independent entries every client store holds.
const (
	UsersKey        = "users"
	LoggedInUserKey = "loggedInUser"
	ProductsKey     = "products"
	CartKey         = "cart"
)

type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Price is in minor currency units.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CartItem is a snapshot of the product taken when it was first added,
// flattened next to the quantity on the wire.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
