// Project Structure Overview
/*
cm-backend/
├── cmd/
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── common.go
│   │   ├── user.go
│   │   ├── product.go
│   │   ├── wishlist.go
│   │   ├── alert.go
│   │   └── audit.go
│   ├── catalog/
│   │   ├── catalog.go
│   │   └── seed.go
│   ├── cache/
│   │   └── redis.go
│   ├── services/
│   │   ├── errors.go
│   │   ├── search_service.go
│   │   ├── product_service.go
│   │   ├── wishlist_service.go
│   │   ├── auth_service.go
│   │   └── alert_service.go
│   ├── handlers/
│   │   ├── auth.go
│   │   ├── search.go
│   │   ├── product.go
│   │   ├── wishlist.go
│   │   └── alert.go
│   ├── middleware/
│   │   ├── auth.go
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── i18n.go
│   │   └── logging.go
│   ├── database/
│   │   └── connection.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── keys.go
│   │   └── locales/
│   │       ├── en.json
│   │       └── zh_TW.json
│   ├── utils/
│   │   ├── jwt.go
│   │   ├── validator.go
│   │   └── response.go
│   ├── router/
│   │   └── router.go
│   └── tests/
│       └── api_test.go
├── go.mod
└── go.sum
*/

package cmbackend

// This file shows the project structure and main entry point
// The actual implementation is in the files shown in the structure above
