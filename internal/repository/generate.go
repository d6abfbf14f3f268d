package repository

//go:generate mockgen -source=transactor.go -destination=mocks/mock_transactor.go -package=mocks
//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=preferences_repository.go -destination=mocks/mock_preferences_repository.go -package=mocks
//go:generate mockgen -source=profile_repository.go -destination=mocks/mock_profile_repository.go -package=mocks
//go:generate mockgen -source=media_repository.go -destination=mocks/mock_media_repository.go -package=mocks
//go:generate mockgen -source=interaction_repository.go -destination=mocks/mock_interaction_repository.go -package=mocks
//go:generate mockgen -source=match_repository.go -destination=mocks/mock_match_repository.go -package=mocks
//go:generate mockgen -source=verification_store.go -destination=mocks/mock_verification_store.go -package=mocks
//go:generate mockgen -source=object_storage.go -destination=mocks/mock_object_storage.go -package=mocks
