package data

// User is proxied to and from the provider's identity endpoints; nothing is
// stored locally.
type User struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Token         string `json:"token"`
	Notifications bool   `json:"notifications"`
	LastLogin     string `json:"lastLogin"`
}

// TokenRefresh is what the provider answers after issuing a new token.
type TokenRefresh struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type MonthlyRequests struct {
	Range string `json:"range"`
	Total int    `json:"total"`
}

type UserStats struct {
	LastLogin        string            `json:"lastLogin"`
	RequestsPerMonth []MonthlyRequests `json:"requestsPerMonth"`
}

type Message struct {
	Msg string `json:"msg"`
}

type RequestLog struct {
	URL  string `json:"url"`
	Date string `json:"date"`
}

type RequestCount struct {
	ID    string `json:"_id"`
	Count int    `json:"count"`
}

type RequestsAmount struct {
	Total    int            `json:"total"`
	Requests []RequestCount `json:"requests"`
}

// Metering windows accepted by the provider.
const (
	RangeDay   = "day"
	RangeWeek  = "week"
	RangeMonth = "month"
)

var Ranges = []string{RangeMonth, RangeWeek, RangeDay}
