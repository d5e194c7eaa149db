package seed

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bay-services/dashboard/backend/internal/domain"
	"github.com/bay-services/dashboard/backend/internal/utils"
)

// Store is the write side the fixtures go through. *repository.Repository
// implements it.
type Store interface {
	UpsertAutoAnswer(a *domain.AutoAnswer) error
	UpsertServicePrice(p *domain.ServicePrice) error
	UpsertServiceInfo(i *domain.ServiceInfo) error
	UpsertPropertyCompany(c *domain.PropertyCompany) error
	UpsertOutstandingPayment(p *domain.OutstandingPayment) error
	UpsertScheduleRow(schedule string, row *domain.ScheduleRow) error
}

type Result struct {
	Success int
	Errors  int
}

func (r *Result) add(other Result) {
	r.Success += other.Success
	r.Errors += other.Errors
}

// UploadDocuments writes docs into collection one by one. A failing item is
// logged and counted; the rest still go through.
func UploadDocuments(store Store, collection string, docs []Document) Result {
	res := Result{}
	for i, doc := range docs {
		id, err := DocumentID(doc, collection)
		if err != nil {
			slog.Error("no valid id for item", "collection", collection, "item", i+1, "error", err)
			res.Errors++
			continue
		}

		if err := uploadDocument(store, collection, id, doc); err != nil {
			slog.Error("failed to upload item", "collection", collection, "item", i+1, "id", id, "error", err)
			res.Errors++
			continue
		}

		res.Success++
		slog.Debug("uploaded item", "collection", collection, "item", fmt.Sprintf("%d/%d", i+1, len(docs)), "id", id)
	}
	return res
}

func uploadDocument(store Store, collection, id string, doc Document) error {
	switch collection {
	case CollectionAutoAnswers:
		return store.UpsertAutoAnswer(toAutoAnswer(id, doc))
	case CollectionServicesPrices:
		return store.UpsertServicePrice(toServicePrice(id, doc))
	case CollectionServiceInfo:
		return store.UpsertServiceInfo(toServiceInfo(id, doc))
	case CollectionPropertyManagement:
		return store.UpsertPropertyCompany(toPropertyCompany(id, doc))
	case CollectionOutstandingPayments:
		p, err := toOutstandingPayment(id, doc)
		if err != nil {
			return err
		}
		return store.UpsertOutstandingPayment(p)
	}

	kind, ok := scheduleFor(collection)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	row := toScheduleRow(doc)
	if err := utils.ValidateScheduleRow(row); err != nil {
		return err
	}
	return store.UpsertScheduleRow(kind.Name, row)
}

// UploadTask reads one fixture file and uploads it. An unreadable file
// counts as a single error.
func UploadTask(store Store, task Task) Result {
	f, err := os.Open(task.Path)
	if err != nil {
		slog.Error("failed to open fixture", "path", task.Path, "error", err)
		return Result{Errors: 1}
	}
	defer f.Close()

	docs, err := DecodeDocuments(f)
	if err != nil {
		slog.Error("failed to decode fixture", "path", task.Path, "error", err)
		return Result{Errors: 1}
	}

	return UploadDocuments(store, task.Collection, docs)
}

// Upload runs every task of m in order and logs a summary per task and in
// total.
func Upload(store Store, m *Manifest) Result {
	total := Result{}
	for i, task := range m.Tasks {
		slog.Info("processing fixture", "task", fmt.Sprintf("%d/%d", i+1, len(m.Tasks)), "path", task.Path, "collection", task.Collection)

		res := UploadTask(store, task)
		slog.Info("upload completed", "collection", task.Collection, "success", res.Success, "errors", res.Errors)

		total.add(res)
	}

	slog.Info("upload summary", "success", total.Success, "errors", total.Errors)
	return total
}
