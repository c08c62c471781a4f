package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/carlosftapiap/arcsapp-sub001/internal/auditpb"
	"github.com/carlosftapiap/arcsapp-sub001/internal/filex"
	"github.com/carlosftapiap/arcsapp-sub001/internal/netx"
	"github.com/gabriel-vasile/mimetype"
)

func (a *App) ping(ctx context.Context, _ []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func (a *App) createDossier(ctx context.Context, args []string) error {
	name := strings.TrimSpace(strings.Join(args[1:], " "))
	if name == "" {
		return errUsage
	}
	manufacturer, err := GetSimpleText(a.reader, "Manufacturer", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	d, err := a.api.CreateDossier(ctx, &auditpb.CreateDossierRequest{
		ProductType:  args[0],
		ProductName:  name,
		Manufacturer: manufacturer,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Dossier %s created (%s, template %s)\n", d.GetId(), d.GetStatus(), d.GetTemplateId())
	return nil
}

func (a *App) showDossier(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.GetDossier(ctx, args[0])
	if err != nil {
		return err
	}
	d := resp.GetDossier()
	fmt.Fprintf(a.out, "%s  %s (%s)  %s  status=%s\n", d.GetId(), d.GetProductName(), d.GetManufacturer(), d.GetProductType(), d.GetStatus())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITEM\tCODE\tSTAGE\tSTATUS\tOBSERVATION")
	for _, it := range resp.GetItems() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", it.GetId(), it.GetCode(), it.GetStage(), it.GetStatus(), it.GetObservation())
	}
	return tw.Flush()
}

// upload requests a presigned URL, PUTs the file body to it and confirms
// the document with the server.
func (a *App) upload(ctx context.Context, args []string) error {
	dossierID, path := args[0], args[1]
	itemID := ""
	if len(args) > 2 {
		itemID = args[2]
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	mime, _, _ := strings.Cut(mimetype.Detect(body).String(), ";")

	rctx, cancel := a.requestCtx(ctx)
	defer cancel()

	ticket, err := a.api.RequestUpload(rctx, &auditpb.RequestUploadRequest{
		DossierId:     dossierID,
		DossierItemId: itemID,
		FileName:      filepath.Base(path),
		MimeType:      mime,
	})
	if err != nil {
		return err
	}

	if err := netx.UploadToPresignedURL(rctx, a.http, ticket.GetUrl(), mime, body); err != nil {
		return err
	}

	doc, err := a.api.ConfirmUpload(rctx, ticket.GetDocumentId())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Document %s %s (%d bytes)\n", doc.GetDocumentId(), doc.GetUploadStatus(), doc.GetSizeBytes())
	return nil
}

func (a *App) runAudit(ctx context.Context, args []string) error {
	stage := ""
	if len(args) > 1 {
		stage = args[1]
	}

	if a.config.AuditTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.AuditTimeout)
		defer cancel()
	}

	fmt.Fprintln(a.out, "Running audit, this can take several minutes...")
	audit, err := a.api.RunAudit(ctx, args[0], stage)
	if err != nil {
		return err
	}
	a.printAudit(audit)
	return nil
}

func (a *App) cancelAudit(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	if err := a.api.CancelAudit(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Cancellation requested for %s\n", args[0])
	return nil
}

func (a *App) listAudits(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	audits, err := a.api.ListAudits(ctx, args[0])
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "AUDIT\tSTAGE\tSTATUS\tPROBLEMS\tPAGES\tSTARTED")
	for _, au := range audits {
		st := au.GetStatus()
		if au.GetLive() {
			st += "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", au.GetId(), stageLabel(au.GetStage()), st, au.GetProblemsFound(), au.GetTotalPages(),
			au.GetCreatedAt().AsTime().Local().Format(time.DateTime))
	}
	return tw.Flush()
}

func (a *App) exportAudit(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	resp, err := a.api.ExportAudit(ctx, args[0])
	if err != nil {
		return err
	}

	path := resp.GetFileName()
	if len(args) > 1 {
		path = args[1]
	}
	if dir := filepath.Dir(path); dir != "." {
		if _, err := filex.EnsureDir(dir); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, resp.GetData(), 0o640); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %s (%d bytes)\n", path, len(resp.GetData()))
	return nil
}

func (a *App) submit(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	st, err := a.api.SubmitDossier(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Dossier %s is %s\n", args[0], st)
	return nil
}

func (a *App) revert(ctx context.Context, args []string) error {
	ctx, cancel := a.requestCtx(ctx)
	defer cancel()

	st, err := a.api.RevertDossier(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Dossier %s is %s\n", args[0], st)
	return nil
}

func (a *App) printAudit(au *auditpb.Audit) {
	fmt.Fprintf(a.out, "Audit %s: %s\n", au.GetId(), au.GetStatus())
	fmt.Fprintf(a.out, "  stage=%s pages=%d stages_with_findings=%d problems=%d time=%s\n",
		stageLabel(au.GetStage()), au.GetTotalPages(), au.GetStagesFound(), au.GetProblemsFound(),
		(time.Duration(au.GetProcessingTimeMs()) * time.Millisecond).String())

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  STAGE\tOUTCOME\tITEMS\tPROBLEMS\tDETAIL")
	for _, o := range au.GetOutcomes() {
		detail := o.GetMessage()
		if o.GetErrorKind() != "" {
			detail = o.GetErrorKind() + ": " + detail
		}
		if len(o.GetIncomplete()) > 0 {
			detail = strings.TrimSpace(detail + " no verdict: " + strings.Join(o.GetIncomplete(), ","))
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d\t%d\t%s\n", o.GetStage(), o.GetOutcome(), o.GetItemsEvaluated(), o.GetProblemsFound(), detail)
	}
	_ = tw.Flush()
}

func stageLabel(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
