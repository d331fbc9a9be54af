package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/creative-sync/internal/scheduler"
	"github.com/vfg2006/creative-sync/internal/usecases/backfilling"
	"github.com/vfg2006/creative-sync/internal/usecases/migrating"
	"github.com/vfg2006/creative-sync/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JobType define o tipo de job que será executado manualmente
const (
	JobTypeCreativeSync   = "creative-sync"
	JobTypeBackfill       = "backfill"
	JobTypeFixProfilePics = "fix-profile-pics"
	JobTypeMigrateStorage = "migrate-storage"
)

// JobServices contém os serviços necessários para executar jobs manualmente
type JobServices struct {
	CreativeSyncService *scheduler.CreativeSyncService
	Backfiller          backfilling.Backfiller
	Migrator            migrating.Migrator
}

// RunJob executa manualmente um job específico em background
func RunJob(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if jobType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de job não especificado", nil)
			return
		}

		switch jobType {
		case JobTypeCreativeSync:
			services.CreativeSyncService.TriggerManualSync()

		case JobTypeBackfill:
			go runBackfill(services.Backfiller, backfilling.Options{})

		case JobTypeFixProfilePics:
			go runBackfill(services.Backfiller, backfilling.Options{Corrective: true})

		case JobTypeMigrateStorage:
			go func() {
				if _, err := services.Migrator.Run(context.Background(), migrating.Options{}); err != nil {
					logrus.WithError(err).Error("Erro na execução manual da migração de armazenamento")
				}
			}()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de job inválido. Valores aceitos: creative-sync, backfill, fix-profile-pics, migrate-storage", nil)
			return
		}

		response := map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    jobType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

func runBackfill(backfiller backfilling.Backfiller, opts backfilling.Options) {
	if _, err := backfiller.Run(context.Background(), opts); err != nil {
		logrus.WithError(err).Error("Erro na execução manual do backfill")
	}
}

// GetJobStatus retorna o status do agendador de sincronização de criativos
func GetJobStatus(services JobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"creative-sync": services.CreativeSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
