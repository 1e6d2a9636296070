package types

// EntityID идентификатор сущности. Выдаётся монотонно, поэтому порядок
// возрастания совпадает с порядком создания.
type EntityID uint64
