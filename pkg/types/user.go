package types

import "time"

type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Salt      string    `json:"-" db:"salt"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// DEMO_USER_ID is the fixed account behind the demo/demo login.
const DEMO_USER_ID int64 = 1
