package devtools

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v3"

	"github.com/keshon/devtools/internal/message"
	"github.com/keshon/devtools/internal/router"
)

func (d *DevTools) filesRoot() (string, *router.ParseError) {
	if d.filesPath == "" {
		return "", d.parser.Errorf("files",
			"the files path has not been defined, and thus all (files | f) operations of this command are non-operable")
	}
	return d.filesPath, nil
}

func (d *DevTools) dialogHost() (DialogHost, *router.ParseError) {
	dh, ok := d.host.(DialogHost)
	if !ok {
		return nil, d.parser.Errorf("files", "this instance is not set up for interactive dialogs")
	}
	return dh, nil
}

func (d *DevTools) opFilesList(ctx context.Context, actx Context, inv *router.Invocation) error {
	root, perr := d.filesRoot()
	if perr != nil {
		return perr
	}
	path := filepath.Join(append([]string{root}, inv.Args...)...)

	entries, err := os.ReadDir(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	var directories, files []string
	for _, e := range entries {
		if e.IsDir() {
			directories = append(directories, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}

	var lines []string
	if len(directories) > 0 {
		lines = append(lines, "DIRECTORIES", strings.Join(directories, ", ")+"\n")
	}
	if len(files) > 0 {
		lines = append(lines, "FILES", strings.Join(files, ", "))
	}
	if len(lines) == 0 {
		return actx.Reply(message.Neg("NO FILES OR SUB-DIRECTORIES"))
	}
	return actx.Reply(message.Def(strings.Join(lines, "\n")))
}

func (d *DevTools) opFilesDownload(ctx context.Context, actx Context, inv *router.Invocation) error {
	root, perr := d.filesRoot()
	if perr != nil {
		return perr
	}
	path := filepath.Join(append([]string{root}, inv.Args...)...)

	info, err := os.Stat(path)
	if err != nil {
		return d.parser.Errorf("files", "the given path does not exist")
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if info.IsDir() {
		err = filepath.WalkDir(path, func(p string, entry fs.DirEntry, err error) error {
			if err != nil || entry.IsDir() {
				return err
			}
			rel, err := filepath.Rel(path, p)
			if err != nil {
				return err
			}
			return zipFile(zw, p, filepath.ToSlash(rel))
		})
	} else {
		err = zipFile(zw, path, info.Name())
	}
	if err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}

	name := fmt.Sprintf("dpy_devtools_zipped_%d.zip", time.Now().Unix())
	return actx.ReplyFile(name, &buf)
}

func zipFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

func (d *DevTools) opFilesUpload(ctx context.Context, actx Context, inv *router.Invocation) error {
	root, perr := d.filesRoot()
	if perr != nil {
		return perr
	}
	dh, perr := d.dialogHost()
	if perr != nil {
		return perr
	}
	path := filepath.Join(append([]string{root}, inv.Args...)...)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return d.parser.Errorf("files",
			"the given path is a directory; (-u | --upload) may only be used on files")
	}

	deadline := time.Now().Add(dialogTimeout).Unix()
	prompt := fmt.Sprintf("```\nSend one file or type 'cancel' to cancel.```\n"+
		"*This dialog will automatically be cancelled <t:%d:R>.*", deadline)
	if err := actx.Reply(message.RawPos(prompt)); err != nil {
		return err
	}

	msg, err := dh.AwaitMessage(ctx, actx.ChannelID(), strconv.FormatInt(actx.UserID(), 10), dialogTimeout)
	if err != nil {
		if errors.Is(err, ErrDialogTimeout) {
			return actx.Reply(message.Neg("This dialog has been cancelled."))
		}
		return err
	}
	if strings.EqualFold(strings.TrimSpace(msg.Content), "cancel") {
		return actx.Reply(message.Neg("This dialog has been cancelled."))
	}
	if len(msg.Attachments) != 1 {
		return d.parser.Errorf("files",
			"exactly one attachment must be sent; this dialog has been cancelled")
	}

	att := msg.Attachments[0]
	src, err := att.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return actx.Reply(message.Pos(fmt.Sprintf(
		"The file '%s' has successfully been saved to '%s'.", att.Filename, path)))
}

func (d *DevTools) opFilesRemove(ctx context.Context, actx Context, inv *router.Invocation) error {
	root, perr := d.filesRoot()
	if perr != nil {
		return perr
	}
	dh, perr := d.dialogHost()
	if perr != nil {
		return perr
	}
	path := filepath.Join(append([]string{root}, inv.Args...)...)

	info, err := os.Stat(path)
	if err != nil {
		return d.parser.Errorf("files", "the given path does not exist")
	}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			return actx.Reply(message.Neg("The given directory is not empty."))
		}
	}

	code := shortuuid.New()
	deadline := time.Now().Add(dialogTimeout).Unix()
	prompt := fmt.Sprintf("```\nSend the following code to confirm the removal of '%s':\n\n%s```\n"+
		"*This dialog will automatically be cancelled <t:%d:R>.*", path, code, deadline)
	if err := actx.Reply(message.RawPos(prompt)); err != nil {
		return err
	}

	msg, err := dh.AwaitMessage(ctx, actx.ChannelID(), strconv.FormatInt(actx.UserID(), 10), dialogTimeout)
	if err != nil {
		if errors.Is(err, ErrDialogTimeout) {
			return actx.Reply(message.Neg("This dialog has been cancelled."))
		}
		return err
	}
	if msg.Content != code {
		return actx.Reply(message.Neg("The code provided does not match. This dialog has been cancelled."))
	}

	if err := os.Remove(path); err != nil {
		return err
	}
	return actx.Reply(message.Pos(fmt.Sprintf("'%s' has successfully been removed.", path)))
}
