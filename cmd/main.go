package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"github.com/zooyer/golib/xos"

	dxf "github.com/onepoint10/dxf-inspector"
	"github.com/onepoint10/dxf-inspector/config"
	"github.com/onepoint10/dxf-inspector/measure"
	"github.com/onepoint10/dxf-inspector/report"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprint(os.Stderr, report.Error(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		noColor   bool
		asJSON    bool
		csvPath   string
		pick      bool
		tolerance float64
		maxDepth  int
	)

	cmd := &cobra.Command{
		Use:     "dxf-inspector [图纸.dxf]",
		Short:   "分析DXF图纸，输出激光切割报价指标",
		Long:    "读取DXF图纸并统计激光切割报价所需的指标:\n总切割长度、穿孔次数(闭合轮廓)、板材尺寸、实体与图层分布。",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// 命令行显式指定的优先于配置文件
			if cmd.Flags().Changed("tolerance") {
				cfg.Tolerance = tolerance
			}
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = maxDepth
			}
			if noColor {
				cfg.NoColor = true
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}

			// 双击/拖拽场景：弹出文件选择框，并在退出前暂停等待按键
			if pick {
				defer xos.PauseExit()

				filename, err = zenity.SelectFile(
					zenity.Title("选择DXF图纸"),
					zenity.FileFilters{{Name: "DXF图纸", Patterns: []string{"*.dxf"}, CaseFold: true}},
				)
				if errors.Is(err, zenity.ErrCanceled) {
					return nil
				}
				if err != nil {
					return err
				}
			}

			if filename == "" {
				return errors.New("未指定DXF文件，用法: dxf-inspector <图纸.dxf> 或加 --pick 弹出选择框")
			}

			return runAnalyze(cmd, filename, cfg, asJSON, csvPath)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "关闭彩色输出")
	cmd.Flags().BoolVar(&asJSON, "json", false, "以JSON输出完整指标")
	cmd.Flags().StringVar(&csvPath, "csv", "", "把实体统计导出为CSV文件")
	cmd.Flags().BoolVar(&pick, "pick", false, "弹出文件选择框(双击运行场景)")
	cmd.Flags().Float64Var(&tolerance, "tolerance", measure.DefaultTolerance, "曲线展平最大偏差(mm)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", measure.DefaultMaxDepth, "曲线展平递归深度上限")

	cmd.AddCommand(newWatchCmd())

	return cmd
}

func runAnalyze(cmd *cobra.Command, filename string, cfg *config.Config, asJSON bool, csvPath string) error {
	out := cmd.OutOrStdout()

	if !strings.EqualFold(filepath.Ext(filename), ".dxf") {
		fmt.Fprint(out, report.Warning(fmt.Sprintf("%s 不是 .dxf 扩展名，仍尝试解析", filename)))
	}

	doc, err := dxf.Open(filename)
	if err != nil {
		return fmt.Errorf("读取 %s: %w", filename, err)
	}

	metrics, err := measure.Analyze(doc.Entities, measure.Options{
		Tolerance: cfg.Tolerance,
		MaxDepth:  cfg.MaxDepth,
	})
	if err != nil {
		return fmt.Errorf("分析 %s: %w", filename, err)
	}
	metrics.Filename = filepath.Base(filename)

	if asJSON {
		if err = report.WriteJSON(out, metrics); err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, report.Format(metrics, cfg.NoColor))
		if doc.Header.Version != "" {
			fmt.Fprintf(out, "DXF版本: %s\n", doc.Header.Version)
		}
	}

	if csvPath != "" {
		if err = report.WriteCSV(csvPath, metrics); err != nil {
			return fmt.Errorf("写入 %s: %w", csvPath, err)
		}
		fmt.Fprint(out, report.Success("已导出: "+csvPath))
	}

	return nil
}

func newWatchCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "watch <目录>",
		Short: "监听目录，DXF文件有变动就重新分析",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if noColor {
				cfg.NoColor = true
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			return watch(ctx, cmd, args[0], cfg)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "关闭彩色输出")

	return cmd
}

func watch(ctx context.Context, cmd *cobra.Command, dir string, cfg *config.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("监听 %s: %w", dir, err)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	logger.Info("开始监听", "dir", dir, "extensions", cfg.Watch.Extensions)

	for {
		select {
		case <-ctx.Done():
			logger.Info("停止监听")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !watchedExtension(event.Name, cfg.Watch.Extensions) {
				continue
			}

			logger.Info("检测到变动", "file", event.Name, "op", event.Op.String())
			if err := runAnalyze(cmd, event.Name, cfg, false, ""); err != nil {
				logger.Error("分析失败", "file", event.Name, "err", err)
			}
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("监听出错", "err", werr)
		}
	}
}

func watchedExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}

	return false
}
