package routes

import (
	"context"
	"fmt"
	"log"

	"nelly_tech/internal/adapter/persistence/store"
	"nelly_tech/internal/infrastructure/config"
	"nelly_tech/internal/infrastructure/database"
	"nelly_tech/internal/infrastructure/identity"
	"nelly_tech/internal/infrastructure/storage"
	"nelly_tech/internal/usecase/interfaces"
)

type dependencies struct {
	store    interfaces.IDocumentStore
	images   interfaces.IImageStorage
	identity interfaces.IIdentityProvider
	closers  []func() error
}

func (d *dependencies) Close() {
	for _, closeFn := range d.closers {
		if err := closeFn(); err != nil {
			log.Printf("[routes] close failed err=%v", err)
		}
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}

	if err := deps.connectStore(ctx, cfg); err != nil {
		deps.Close()
		return nil, err
	}
	if err := deps.connectImageStorage(ctx, cfg); err != nil {
		deps.Close()
		return nil, err
	}

	admins, err := identity.LoadAdmins(cfg.Auth.AdminUsersFile)
	if err != nil {
		deps.Close()
		return nil, err
	}
	deps.identity = identity.NewProvider(admins, identity.Options{
		Secret: cfg.Auth.JWTSecret,
		Issuer: cfg.Auth.JWTIssuer,
		TTL:    cfg.Auth.TokenTTL,
	})
	log.Printf("[routes] identity provider ready admins=%d", len(admins))

	return deps, nil
}

func (d *dependencies) connectStore(ctx context.Context, cfg *config.Config) error {
	var backend interface {
		interfaces.IDocumentStore
		database.Pinger
	}

	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWS.Region,
			Endpoint:        cfg.AWS.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			SessionToken:    cfg.AWS.SessionToken,
		})
		if err != nil {
			return err
		}
		backend = store.NewDynamoDBStore(ddb, cfg.Tables())
	case config.StoreBackendFirestore:
		client, err := database.ConnectFirestore(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, client.Close)
		backend = store.NewFirestoreStore(client)
	case config.StoreBackendMemory:
		log.Printf("[routes] using in-memory store, data is lost on restart")
		backend = store.NewMemoryStore()
	default:
		return fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if err := database.WaitReady(ctx, backend, cfg.StoreReadyTimeout, database.DefaultReadyInterval); err != nil {
		return err
	}
	d.store = backend
	log.Printf("[routes] document store ready backend=%s", cfg.StoreBackend)
	return nil
}

func (d *dependencies) connectImageStorage(ctx context.Context, cfg *config.Config) error {
	switch cfg.ImageStorage {
	case config.ImageStorageMinio:
		s, err := storage.NewMinioStorage(storage.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
			PublicURL: cfg.Minio.PublicURL,
		})
		if err != nil {
			return err
		}
		if err := s.EnsureBucket(ctx); err != nil {
			return err
		}
		d.images = s
	case config.ImageStorageGCS:
		s, err := storage.NewGCSStorage(ctx, cfg.GCSBucket)
		if err != nil {
			return err
		}
		d.closers = append(d.closers, s.Close)
		d.images = s
	case config.ImageStorageInline:
		limit := inlineImageLimit(cfg.StoreBackend)
		d.images = storage.NewInlineStorage(limit)
		log.Printf("[routes] inline images limited to %d bytes by store=%s", limit, cfg.StoreBackend)
	default:
		return fmt.Errorf("unknown image storage %q", cfg.ImageStorage)
	}
	log.Printf("[routes] image storage ready backend=%s", cfg.ImageStorage)
	return nil
}

// inlineImageLimit bounds inline images to what one record of the store can
// hold. The memory store has no record limit.
func inlineImageLimit(storeBackend string) int {
	switch storeBackend {
	case config.StoreBackendDynamoDB:
		return storage.InlineMaxBytesDynamoDB
	case config.StoreBackendFirestore:
		return storage.InlineMaxBytesFirestore
	default:
		return 0
	}
}
