// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности. Выдаётся счётчиком
// entity.ECS.NewEntity и никогда не переиспользуется в рамках сессии.
type EntityID uint64
